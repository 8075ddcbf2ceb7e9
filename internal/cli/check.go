package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/dictmatch/internal/cases"
	"github.com/AndreyAkinshin/dictmatch/internal/errors"
	"github.com/AndreyAkinshin/dictmatch/internal/logger"
	"github.com/AndreyAkinshin/dictmatch/internal/output"
)

func newCheckCmd(w *output.Writer, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Run the cases in the given files and directories",
		Long: `Run every case found in the given case files. Directories are searched
recursively for .json, .yaml, and .yml files.

Exit status is 0 when every case passes, 1 when a case fails or cannot be
evaluated, and 2 when a settings or case file is invalid.

Examples:
  # Run one file
  dictmatch check cases/orders.json

  # Run a directory with shared settings and a JSON report
  dictmatch check --config dictmatch.yaml --json cases/`,
		Args: requirePaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, w, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show every compared field, not only failures")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "write a JSON report to stdout")
	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, w *output.Writer, opts *options) error {
	cfg, warnings, err := loadSettings(opts.configPath)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		w.Warning("%s", warning)
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return errors.Configf("invalid log settings: %v", err)
	}
	defer func() { _ = log.Sync() }()

	loaded, err := cases.LoadPaths(paths)
	if err != nil {
		return err
	}
	log.Debug("Cases loaded", zap.Int("count", len(loaded)), zap.Strings("paths", paths))

	w.SetQuiet(opts.quiet)
	start := time.Now()
	results, err := cases.NewRunner(cfg, log).Run(cmd.Context(), loaded)
	if err != nil {
		return errors.Wrap(err, "run interrupted")
	}
	summary := cases.Summarize(results)

	if opts.jsonOut {
		if err := w.JSON(results); err != nil {
			return errors.Wrap(err, "failed to write report")
		}
	} else {
		w.Section("Cases")
		for _, r := range results {
			w.CaseResult(r, opts.verbose)
		}
		w.RunSummary(summary, time.Since(start))
	}

	if !summary.OK() {
		return &exitError{code: errors.ExitAssertionFailed}
	}
	return nil
}
