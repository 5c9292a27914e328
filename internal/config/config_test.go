// SPDX-License-Identifier: MIT
package config_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/internal/config"
	"github.com/katalvlaran/ahp/modelerr"
)

const judgmentsDoc = `
labels: [price, quality, service]
solver: power
judgments:
  - {a: price, b: quality, value: "2"}
  - {a: price, b: service, value: "4"}
  - {a: service, b: quality, value: "1/2"}
`

const matrixDoc = `
labels: [A, B]
tolerance: 0.001
matrix:
  - ["1", "3"]
  - ["0.3333", "1"]
`

func TestReadComparison_Judgments(t *testing.T) {
	t.Parallel()

	doc, err := config.ReadComparison(strings.NewReader(judgmentsDoc))
	require.NoError(t, err)
	assert.Equal(t, []string{"price", "quality", "service"}, doc.Labels)
	assert.Equal(t, "power", doc.Solver)
	require.Len(t, doc.Judgments, 3)
	assert.Equal(t, "1/2", doc.Judgments[2].Value)

	c, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Judged())
	p, err := c.Priorities()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4.0 / 7, 2.0 / 7, 1.0 / 7}, p, 1e-9)
}

func TestReadComparison_Matrix(t *testing.T) {
	t.Parallel()

	doc, err := config.ReadComparison(strings.NewReader(matrixDoc))
	require.NoError(t, err)
	require.NotNil(t, doc.Tolerance)

	c, err := doc.Build()
	require.NoError(t, err)
	v, err := c.At("B", "A")
	require.NoError(t, err)
	assert.InDelta(t, 0.3333, v, 1e-12)

	// Default tolerance rejects the rounded reciprocal.
	doc.Tolerance = nil
	_, err = doc.Build()
	assert.ErrorIs(t, err, modelerr.ErrConsistency)
}

func TestReadComparison_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":          ``,
		"no labels":      `judgments: []`,
		"duplicate":      "labels: [A, A]",
		"unknown key":    "labels: [A]\ncolour: red",
		"bad solver":     "labels: [A]\nsolver: magic",
		"both forms":     "labels: [A, B]\njudgments: [{a: A, b: B, value: '2'}]\nmatrix: [['1','2'],['1/2','1']]",
		"missing value":  "labels: [A, B]\njudgments: [{a: A, b: B}]",
		"empty cell":     "labels: [A]\nmatrix: [['']]",
		"negative tol":   "labels: [A]\ntolerance: -1",
		"infinite tol":   "labels: [A]\ntolerance: .inf",
		"nan tol":        "labels: [A]\ntolerance: .nan",
		"huge tol":       "labels: [A]\ntolerance: 5",
		"not a document": "- just\n- a list",
	}
	for name, doc := range cases {
		_, err := config.ReadComparison(strings.NewReader(doc))
		assert.ErrorIs(t, err, config.ErrInvalidDocument, name)
	}
}

func TestComparisonBuild_ModelErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		doc  string
		want error
	}{
		"off scale":     {"labels: [A, B]\njudgments: [{a: A, b: B, value: '1.3'}]", modelerr.ErrInvalidSaatyScale},
		"unparsable":    {"labels: [A, B]\njudgments: [{a: A, b: B, value: 'lots'}]", modelerr.ErrInvalidSaatyScale},
		"unknown label": {"labels: [A, B]\njudgments: [{a: A, b: unknown, value: '2'}]", modelerr.ErrUnknownLabel},
		"conflict":      {"labels: [A, B]\njudgments: [{a: A, b: B, value: '2'}, {a: B, b: A, value: '4'}]", modelerr.ErrConsistency},
		"shape":         {"labels: [A, B]\nmatrix: [['1']]", modelerr.ErrStructure},
		"bad cell":      {"labels: [A]\nmatrix: [['x']]", modelerr.ErrInvalidSaatyScale},
	}
	for name, tc := range cases {
		doc, err := config.ReadComparison(strings.NewReader(tc.doc))
		require.NoError(t, err, name)
		_, err = doc.Build()
		assert.ErrorIs(t, err, tc.want, name)
	}
}

func TestLoadComparison_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(judgmentsDoc), 0o600))

	doc, err := config.LoadComparison(path)
	require.NoError(t, err)
	assert.Len(t, doc.Labels, 3)

	_, err = config.LoadComparison(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("labels: [A, A]"), 0o600))
	_, err = config.LoadComparison(bad)
	require.ErrorIs(t, err, config.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestSettingsOptions_RejectsUnvalidated(t *testing.T) {
	t.Parallel()

	inf, nan, neg := math.Inf(1), math.NaN(), -0.5
	for _, s := range []config.Settings{
		{Tolerance: &inf},
		{Tolerance: &nan},
		{Tolerance: &neg},
		{Solver: "magic"},
	} {
		assert.NotPanics(t, func() {
			_, err := s.Options()
			assert.ErrorIs(t, err, config.ErrInvalidDocument)
		})
	}

	tol := 0.01
	opts, err := config.Settings{Solver: "power", Tolerance: &tol, SentinelUnset: true}.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 3)

	opts, err = config.Settings{}.Options()
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestComparisonDoc_InfiniteToleranceDoesNotPanic(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	doc := &config.ComparisonDoc{
		Settings: config.Settings{Tolerance: &inf},
		Labels:   []string{"A", "B"},
	}
	doc.Matrix = [][]string{{"1", "3"}, {"1/3", "1"}}
	assert.NotPanics(t, func() {
		_, err := doc.Build()
		assert.ErrorIs(t, err, config.ErrInvalidDocument)
	})
}

func TestReadComparison_SentinelAndEmpty(t *testing.T) {
	t.Parallel()

	doc, err := config.ReadComparison(strings.NewReader(
		"labels: [A, B, C]\nsentinel_unset: true\njudgments:\n  - {a: A, b: B, value: '2'}\n"))
	require.NoError(t, err)
	assert.True(t, doc.SentinelUnset)

	c, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 1}, {0.5, 1, 1}, {1, 1, 1}}, c.Rows())

	doc, err = config.ReadComparison(strings.NewReader("labels: [A, B]"))
	require.NoError(t, err)
	c, err = doc.Build()
	require.NoError(t, err)
	p, err := c.Priorities()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, p, 1e-9)
}
