package cli

import (
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/dictmatch/internal/cases"
	"github.com/AndreyAkinshin/dictmatch/internal/output"
)

func newValidateCmd(w *output.Writer, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>...",
		Short: "Check settings and case files without running them",
		Args:  requirePaths,
		RunE: func(_ *cobra.Command, args []string) error {
			_, warnings, err := loadSettings(opts.configPath)
			if err != nil {
				return err
			}
			for _, warning := range warnings {
				w.Warning("%s", warning)
			}

			loaded, err := cases.LoadPaths(args)
			if err != nil {
				return err
			}

			files := make(map[string]bool)
			for _, c := range loaded {
				files[c.File] = true
			}
			w.Success("%d cases in %d files are valid", len(loaded), len(files))
			return nil
		},
	}
}

func newPredicatesCmd(w *output.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "predicates",
		Short: "List the predicates available to {\"$pred\": ...} markers",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			w.List(cases.BuiltinNames())
		},
	}
}
