package main

import "github.com/spf13/cobra"

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [filename]",
		Short: "Show the paragraphs and sentences of one document",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runShow,
	}
}

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	corpus, err := a.buildCorpus()
	if err != nil {
		return err
	}
	doc, err := corpus.GetDocument(args[0])
	if err != nil {
		return err
	}
	r := a.reporter(cmd)
	if err := r.DescribeDocument(doc); err != nil {
		return err
	}
	if err := r.ListParagraphs(doc); err != nil {
		return err
	}
	return r.ListSentences(doc)
}
