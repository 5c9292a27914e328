// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/internal/config"
	"github.com/katalvlaran/ahp/internal/report"
)

func newPrioritiesCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "priorities -f comparison.yaml",
		Short: "Compute the priority vector and consistency ratio of one comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := config.LoadComparison(file)
			if err != nil {
				return err
			}
			a.log.Debug("comparison loaded", "file", file, "labels", len(doc.Labels),
				"judgments", len(doc.Judgments), "matrix", doc.Matrix != nil)

			c, err := doc.Build()
			if err != nil {
				return err
			}
			res, err := report.FromComparison(c)
			if err != nil {
				return err
			}
			a.log.Info("priorities computed", "comparison", c.String(),
				"lambda_max", res.Consistency.LambdaMax, "cr", res.Consistency.Ratio)
			if !res.Consistency.Acceptable {
				a.log.Warn("judgments are inconsistent", "cr", res.Consistency.Ratio)
			}

			return report.WriteComparison(cmd.OutOrStdout(), a.out, res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "comparison document (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
