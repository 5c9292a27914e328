// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/internal/logging"
	"github.com/katalvlaran/ahp/internal/report"
)

// app carries the state resolved from persistent flags.
type app struct {
	logLevel string
	format   string

	log *slog.Logger
	out report.Format
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ahp",
		Short: "Analytic Hierarchy Process: priorities and consistency from pairwise judgments",
		Long: `ahp derives priority weights from pairwise comparisons on Saaty's 1-9 scale,
checks their consistency ratio and ranks alternatives across a hierarchy.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if a.log, err = logging.New(cmd.ErrOrStderr(), a.logLevel); err != nil {
				return err
			}
			a.out, err = report.ParseFormat(a.format)

			return err
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.format, "format", string(report.FormatText), "output format: text, json, yaml")

	root.AddCommand(newPrioritiesCmd(a), newRankCmd(a), newScaleCmd(a))

	return root
}
