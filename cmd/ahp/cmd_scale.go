// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/internal/report"
)

func newScaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale",
		Short: "Print the judgment scale and the Random Index table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.WriteScale(cmd.OutOrStdout(), a.out, report.ScaleInfo())
		},
	}
}
