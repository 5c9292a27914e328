// SPDX-License-Identifier: MIT

// Package config loads the YAML documents read by the ahp command.
//
// Two documents exist. A comparison document describes one set of
// judgments over a label set:
//
//	labels: [price, quality, service]
//	judgments:
//	  - {a: price, b: quality, value: "2"}
//	  - {a: quality, b: service, value: "1/3"}
//
// or, instead of judgments, a complete matrix:
//
//	matrix:
//	  - ["1",   "3"]
//	  - ["1/3", "1"]
//
// A model document describes a goal, its criteria and alternatives, and one
// comparison for the criteria plus one per criterion for the alternatives.
//
// Values are strings so fractions can be written as such; they are parsed
// with scale.Parse. Documents are decoded strictly (unknown keys fail) and
// then validated with struct tags.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/pairwise"
)

// ErrInvalidDocument wraps every decoding and validation failure.
var ErrInvalidDocument = errors.New("config: invalid document")

// validate is shared by all documents; it reports yaml field names.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
}

// Settings are the engine knobs a document may set.
type Settings struct {
	// Solver is "general" (default) or "power".
	Solver string `yaml:"solver" validate:"omitempty,oneof=general power"`

	// Tolerance overrides the diagonal/reciprocity tolerance for matrices.
	// It must lie in [0, 1); .inf and .nan are rejected.
	Tolerance *float64 `yaml:"tolerance" validate:"omitempty,gte=0,lt=1"`

	// SentinelUnset treats a pair still reading (1, 1) as never judged.
	SentinelUnset bool `yaml:"sentinel_unset"`
}

// Options translates s into pairwise options. Settings that bypassed
// validation fail with ErrInvalidDocument instead of panicking later.
func (s Settings) Options() ([]pairwise.Option, error) {
	var opts []pairwise.Option
	switch s.Solver {
	case matrix.SolverPower.String():
		opts = append(opts, pairwise.WithSolver(matrix.SolverPower))
	case matrix.SolverGeneral.String():
		opts = append(opts, pairwise.WithSolver(matrix.SolverGeneral))
	case "":
	default:
		return nil, fmt.Errorf("%w: unknown solver %q", ErrInvalidDocument, s.Solver)
	}
	if s.Tolerance != nil {
		tol := *s.Tolerance
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
			return nil, fmt.Errorf("%w: tolerance %v must be finite and non-negative", ErrInvalidDocument, tol)
		}
		opts = append(opts, pairwise.WithTolerance(tol))
	}
	if s.SentinelUnset {
		opts = append(opts, pairwise.WithSentinelUnset())
	}

	return opts, nil
}

// decode strictly decodes one YAML document from r into out and validates it.
func decode(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}

		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// decodeFile opens path and decodes it.
func decodeFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err = decode(f, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
