// SPDX-License-Identifier: MIT

// Package modelerr defines the closed error taxonomy shared by the ahp
// packages: one Kind per failure class, one sentinel per Kind, and a
// structured *Error carrying the offending labels and values.
//
// Callers can match broadly or narrowly:
//
//	errors.Is(err, modelerr.ErrModel)        // any modeling failure
//	errors.Is(err, modelerr.ErrConsistency)  // one kind
//	var me *modelerr.Error; errors.As(err, &me) // labels, values, allowed scale
package modelerr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind tags an *Error with its failure class.
type Kind uint8

const (
	// KindStructure: shape mismatch, non-unit diagonal, bad labels, order outside
	// the Random Index table.
	KindStructure Kind = iota + 1
	// KindNormalization: non-positive (or non-finite) comparison entries.
	KindNormalization
	// KindConsistency: reciprocal mismatch or conflicting judgments for one pair.
	KindConsistency
	// KindInvalidScale: a judgment outside the Saaty 1–9 scale and its reciprocals.
	KindInvalidScale
	// KindUnknownLabel: a judgment names a label that was never declared.
	KindUnknownLabel
	// KindDuplicatedCluster: two hierarchy clusters share a name.
	KindDuplicatedCluster
)

// Sentinels; every *Error unwraps to ErrModel and to the sentinel of its Kind.
var (
	ErrModel             = errors.New("ahp: model error")
	ErrStructure         = errors.New("structure error")
	ErrNormalization     = errors.New("normalization error")
	ErrConsistency       = errors.New("consistency error")
	ErrInvalidSaatyScale = errors.New("invalid Saaty scale value")
	ErrUnknownLabel      = errors.New("unknown label")
	ErrDuplicatedCluster = errors.New("duplicated cluster")
)

var kindSentinel = map[Kind]error{
	KindStructure:         ErrStructure,
	KindNormalization:     ErrNormalization,
	KindConsistency:       ErrConsistency,
	KindInvalidScale:      ErrInvalidSaatyScale,
	KindUnknownLabel:      ErrUnknownLabel,
	KindDuplicatedCluster: ErrDuplicatedCluster,
}

// String returns the sentinel text of the kind.
func (k Kind) String() string {
	if s, ok := kindSentinel[k]; ok {
		return s.Error()
	}

	return "unknown kind " + strconv.Itoa(int(k))
}

// Sentinel returns the sentinel error matched by errors.Is for this kind.
func (k Kind) Sentinel() error { return kindSentinel[k] }

// Error is a modeling failure with structured context.
type Error struct {
	Kind    Kind      // failure class
	Op      string    // operation that detected it, e.g. "pairwise.New"
	Msg     string    // human-readable description
	Labels  []string  // offending labels, in the order they were involved
	Values  []float64 // offending values
	Allowed []string  // allowed scale, for KindInvalidScale
	Err     error     // optional underlying cause
}

// New builds an *Error of kind k raised by op.
func New(k Kind, op, msg string) *Error {
	return &Error{Kind: k, Op: op, Msg: msg}
}

// Newf is New with a formatted message.
func Newf(k Kind, op, format string, args ...any) *Error {
	return New(k, op, fmt.Sprintf(format, args...))
}

// WithLabels attaches offending labels and returns e.
func (e *Error) WithLabels(labels ...string) *Error {
	e.Labels = append(e.Labels, labels...)

	return e
}

// WithValues attaches offending values and returns e.
func (e *Error) WithValues(values ...float64) *Error {
	e.Values = append(e.Values, values...)

	return e
}

// WithAllowed attaches the allowed value list and returns e.
func (e *Error) WithAllowed(allowed []string) *Error {
	e.Allowed = append([]string(nil), allowed...)

	return e
}

// Wrap records an underlying cause and returns e.
func (e *Error) Wrap(cause error) *Error {
	e.Err = cause

	return e
}

// Error renders "<op>: <kind>: <msg> [labels=..] [values=..] [allowed=..]".
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Kind.String())
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if len(e.Labels) > 0 {
		fmt.Fprintf(&sb, " labels=%q", e.Labels)
	}
	if len(e.Values) > 0 {
		fmt.Fprintf(&sb, " values=%v", e.Values)
	}
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&sb, " allowed=[%s]", strings.Join(e.Allowed, " "))
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

// Unwrap exposes the kind sentinel, ErrModel and the cause (if any).
func (e *Error) Unwrap() []error {
	errs := []error{ErrModel}
	if s := e.Kind.Sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind, true
	}

	return 0, false
}
