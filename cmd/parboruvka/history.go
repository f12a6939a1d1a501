// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/parboruvka/resultlog"
)

func newHistoryCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "history [file]",
		Short: "Print the results log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			l, err := resultlog.Open(cfg.ResultsDB)
			if err != nil {
				return err
			}
			defer l.Close()

			var file string
			if len(args) == 1 {
				file = args[0]
			}
			records, err := l.List(cmd.Context(), file)
			if err != nil {
				return err
			}

			return resultlog.WriteText(cmd.OutOrStdout(), records)
		},
	}
}
