// Package ahp is an Analytic Hierarchy Process engine: it turns pairwise
// importance judgments on Saaty's 1–9 scale into priority weights and tells
// you how consistent those judgments are.
//
// 🚀 What is in the box?
//
//	• Scale authority: the 17 legal judgment values, reciprocals, Random Index
//	• Comparison matrices: from a complete matrix or from sparse judgments,
//	  validated for shape, positivity, unit diagonal and reciprocity
//	• Priorities: principal eigenvector (dense general solver or power iteration)
//	• Consistency: λmax, CI and CR against Saaty's 0.10 threshold
//	• Hierarchies: goal → criteria → alternatives, with global ranking
//	• A command line tool reading YAML documents
//
// Everything is organized under these packages:
//
//	modelerr/     error taxonomy shared by every package (errors.Is / errors.As)
//	matrix/       dense float64 storage, validators, kernels, dominant eigenpair
//	scale/        Saaty scale, Random Index table, judgment application
//	pairwise/     the comparison matrix and its queries
//	hierarchy/    nodes, clusters, models and synthesis
//	cmd/ahp       CLI (internal/config, internal/report, internal/logging)
//
// Quick start:
//
//	c, err := pairwise.FromJudgments([]string{"price", "quality", "service"},
//		[]pairwise.Judgment{
//			{A: "price", B: "quality", Value: 2},
//			{A: "price", B: "service", Value: 4},
//			{A: "quality", B: "service", Value: 2},
//		})
//	if err != nil {
//		// errors.Is(err, modelerr.ErrConsistency), ErrInvalidSaatyScale, ...
//	}
//	w, _ := c.Priorities()         // [0.571 0.286 0.143]
//	cr, _ := c.ConsistencyRatio()  // cr.Ratio == 0, cr.Acceptable() == true
//
// All computations are synchronous and deterministic. A built Comparison is
// immutable and may be read from many goroutines.
package ahp
