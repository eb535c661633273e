package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/remedy/internal/domain"
	m "github.com/mouse-blink/remedy/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously stored run reports",
		Long:  "View previously stored run reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := buildWorkflow(false)
			if err != nil {
				return err
			}

			return wf.View(cmd.Context(), domain.ViewArgs{Reports: m.Path(reportsOutputDirFlag)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
