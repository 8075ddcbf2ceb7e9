// Package cli implements the dictmatch command line.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/dictmatch/internal/errors"
	"github.com/AndreyAkinshin/dictmatch/internal/output"
)

// Version is set at build time.
var Version = "dev"

// configEnvVar names the settings file when --config is not given.
const configEnvVar = "DICTMATCH_CONFIG"

// options holds the global flags.
type options struct {
	configPath string
	logLevel   string
	quiet      bool
	verbose    bool
	jsonOut    bool
}

// exitError ends the run with a code and no message of its own; the
// reason has already been printed.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return execute(ctx, args, output.New())
}

func execute(ctx context.Context, args []string, w *output.Writer) int {
	root := newRootCmd(w)
	root.SetArgs(args)
	root.SetOut(w.Out())
	root.SetErr(w.Err())

	err := root.ExecuteContext(ctx)
	if err == nil {
		return errors.ExitSuccess
	}

	var exit *exitError
	if stderrors.As(err, &exit) {
		return exit.code
	}
	w.ErrorPrefix("%v", err)

	// Anything that is not a DictmatchError comes from cobra's own argument handling.
	var de *errors.DictmatchError
	if !stderrors.As(err, &de) {
		return errors.ExitConfigError
	}
	return de.ExitCode()
}

func newRootCmd(w *output.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dictmatch",
		Short: "Structural comparison of expected and actual documents",
		Long: `dictmatch compares expected documents against actual ones field by field.

Expected values may contain wildcards ({"$regex": ...}, {"$pred": ...}) and
lists of items can be matched regardless of order. Results show exactly which
fields passed, failed, or were ignored.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("dictmatch {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Config(err.Error())
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "settings file (JSON or YAML; default $"+configEnvVar+")")
	flags.StringVar(&opts.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only print failures and the summary")

	root.AddCommand(
		newCheckCmd(w, opts),
		newValidateCmd(w, opts),
		newPredicatesCmd(w),
		newVersionCmd(w),
	)
	return root
}

// requirePaths is a cobra.PositionalArgs that reports a missing path as a
// configuration error.
func requirePaths(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.Config("at least one case file or directory is required")
	}
	return nil
}

func newVersionCmd(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dictmatch version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			w.Println("dictmatch %s", Version)
		},
	}
}
