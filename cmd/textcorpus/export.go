package main

import (
	"github.com/spf13/cobra"

	"textcorpus/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the corpus as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.buildCorpus()
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), corpus)
		},
	}
}
