package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/remedy/internal/domain"
	m "github.com/mouse-blink/remedy/internal/model"
)

var fixParallelFlag int
var fixExcludeFlags []string
var fixIgnoreFlags []string
var fixDryRunFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [root]",
		Short: "Format, lint, and fix the remaining findings",
		Long:  fixLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := buildWorkflow(true)
			if err != nil {
				return err
			}

			return wf.Fix(cmd.Context(), domain.FixArgs{
				Root:    parseRoot(args),
				Exclude: fixExcludeFlags,
				Ignore:  fixIgnoreFlags,
				Workers: fixParallelFlag,
				DryRun:  fixDryRunFlag,
				Reports: m.Path(reportsOutputDirFlag),
				Linter:  linterFlag,
				Model:   modelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&fixParallelFlag, "parallel", "p", 0, "max concurrent file work units (0 = one per file)")
	cmd.Flags().StringArrayVarP(&fixExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringArrayVarP(&fixIgnoreFlags, "ignore", "i", nil, "issue codes to skip (comma-separated or repeated), or * for all")
	cmd.Flags().BoolVar(&fixDryRunFlag, "dry-run", false, "fix and diff without writing files back")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
