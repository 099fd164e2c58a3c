package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"textcorpus/internal/config"
	"textcorpus/internal/domain"
	"textcorpus/internal/logger"
	"textcorpus/internal/report"
	"textcorpus/internal/service"
)

// app carries the state shared by all subcommands once the root
// PersistentPreRunE has loaded configuration.
type app struct {
	in      io.Reader
	cfgPath string
	cfg     *config.AppConfig
	log     logger.Logger
	builder domain.CorpusBuilder
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in}
	root := &cobra.Command{
		Use:           "textcorpus",
		Short:         "Load a directory of .txt files into paragraphs and sentences",
		Long:          `Scans the configured corpus directory for .txt files, splits each into paragraphs and sentences, and reports on the result.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: a.runInfo,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Path to YAML config file (optional; uses ./config.yaml or ~/.config/textcorpus/config.yaml if not provided)")

	root.AddCommand(
		newInfoCmd(a),
		newShowCmd(a),
		newExportCmd(a),
		newBrowseCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return nil
	}
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	var (
		cfg *config.AppConfig
		err error
	)
	if a.cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(a.cfgPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.VerboseMode)
	a.builder = service.NewCorpusService(nil, nil, a.log)
	if cfg.VerboseMode {
		fmt.Fprintln(cmd.OutOrStdout(), "Verbose output enabled.")
	}
	return nil
}

func (a *app) reporter(cmd *cobra.Command) *report.Reporter {
	return report.New(cmd.OutOrStdout(), a.cfg.VerboseMode)
}

func (a *app) buildCorpus() (*domain.Corpus, error) {
	return a.builder.Build(a.cfg.CorpusDirectory)
}
