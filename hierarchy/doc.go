// Package hierarchy builds a three-level AHP model on top of package pairwise:
// a goal, a cluster of criteria and a cluster of alternatives.
//
// The criteria are compared against each other once; the alternatives are
// compared once per criterion. Rank synthesizes the global score of each
// alternative as the criterion-weighted sum of its local priorities:
//
//	score(a) = Σ_c  w(c) · p_c(a)
//
// Rank and Report fail with modelerr.ErrStructure until every comparison is
// present. A Model is not safe for concurrent mutation.
package hierarchy
