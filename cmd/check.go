package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/remedy/internal/domain"
)

var checkExcludeFlags []string
var checkIgnoreFlags []string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "List linter findings without touching any file",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := buildWorkflow(false)
			if err != nil {
				return err
			}

			return wf.Check(cmd.Context(), domain.CheckArgs{
				Root:    parseRoot(args),
				Exclude: checkExcludeFlags,
				Ignore:  checkIgnoreFlags,
				Linter:  linterFlag,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&checkExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringArrayVarP(&checkIgnoreFlags, "ignore", "i", nil, "issue codes to skip (comma-separated or repeated), or * for all")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
