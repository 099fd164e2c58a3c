package main

import "github.com/spf13/cobra"

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the corpus and every document in it",
		Args:  cobra.NoArgs,
		RunE:  a.runInfo,
	}
}

func (a *app) runInfo(cmd *cobra.Command, _ []string) error {
	corpus, err := a.buildCorpus()
	if err != nil {
		return err
	}
	r := a.reporter(cmd)
	if err := r.DescribeCorpus(corpus); err != nil {
		return err
	}
	for _, doc := range corpus.Documents() {
		if err := r.DescribeDocument(doc); err != nil {
			return err
		}
	}
	return nil
}
