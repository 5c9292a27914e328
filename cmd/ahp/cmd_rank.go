// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/internal/config"
	"github.com/katalvlaran/ahp/internal/report"
)

func newRankCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "rank -f model.yaml",
		Short: "Rank the alternatives of a goal/criteria/alternatives hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := config.LoadModel(file)
			if err != nil {
				return err
			}
			m, err := doc.Build()
			if err != nil {
				return err
			}
			a.log.Debug("model loaded", "file", file, "goal", m.Goal(),
				"criteria", m.Criteria().Size(), "alternatives", m.Alternatives().Size())

			rep, err := m.Report()
			if err != nil {
				return err
			}
			res := report.FromReport(rep)
			for _, name := range res.Inconsistent {
				a.log.Warn("comparison is inconsistent", "comparison", name)
			}
			if len(res.Ranking) > 0 {
				a.log.Info("ranking computed", "best", res.Ranking[0].Label, "score", res.Ranking[0].Score)
			}

			return report.WriteModel(cmd.OutOrStdout(), a.out, res)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "model document (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
