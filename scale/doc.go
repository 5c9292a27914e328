// Package scale is the Saaty scale authority of the ahp engine.
//
// It owns the process-wide constant data every judgment is checked against:
//
//   - the 17 legal magnitudes 1/9 … 1/2, 1, 2 … 9 (closed under reciprocation),
//   - the Random Index table RI(n) for n = 1..15 used to turn a consistency
//     index into a consistency ratio.
//
// and the single mutation primitive of a comparison matrix: applying one
// judgment writes A[i,j] = v and A[j,i] = 1/v, after checking v against the
// scale and against any judgment already recorded for the pair.
//
// Two flavors of "already recorded" exist:
//
//	ApplyJudgment   a pair whose two entries both read 1 counts as unset
//	                (unit sentinel; an explicit 1 can be overwritten later).
//	Ledger.Apply    presence is tracked explicitly, so an explicit 1 is a
//	                judgment like any other and later conflicts are rejected.
//
// The tables are never mutated after package initialization and are safe to
// share between goroutines; accessors return copies.
package scale
