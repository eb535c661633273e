// Package cmd provides the root command and CLI setup for remedy.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/remedy/internal/adapter"
	"github.com/mouse-blink/remedy/internal/controller"
	"github.com/mouse-blink/remedy/internal/domain"
	m "github.com/mouse-blink/remedy/internal/model"
)

const apiKeyEnvVar = "OPENAI_API_KEY" //nolint:gosec // env var name, not a credential

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// uiRootCmd returns the current root command. It is assigned in init rather
// than via a var initializer so that buildWorkflow does not participate in
// rootCmd's initialization dependency graph (which would be a cycle).
var uiRootCmd func() *cobra.Command

func init() {
	uiRootCmd = func() *cobra.Command { return rootCmd }
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewLocalReportStore()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

var apiKeyFlag string
var modelFlag string
var baseURLFlag string
var linterFlag string
var reportsOutputDirFlag string
var ttyFlag bool

var parallelFlag int
var excludeFlags []string
var ignoreFlags []string
var dryRunFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remedy [root]",
		Short: "Fix linter findings with an LLM",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := buildWorkflow(true)
			if err != nil {
				return err
			}

			return wf.Fix(cmd.Context(), domain.FixArgs{
				Root:    parseRoot(args),
				Exclude: excludeFlags,
				Ignore:  ignoreFlags,
				Workers: parallelFlag,
				DryRun:  dryRunFlag,
				Reports: m.Path(reportsOutputDirFlag),
				Linter:  linterFlag,
				Model:   modelFlag,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "OpenAI API key (falls back to "+apiKeyEnvVar+")")
	cmd.PersistentFlags().StringVar(&modelFlag, "model", "gpt-4o-mini", "chat completion model used to produce fixes")
	cmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "base URL of the chat completion service (empty = OpenAI)")
	cmd.PersistentFlags().StringVar(&linterFlag, "linter", "ruff", "linter executable to run")
	cmd.PersistentFlags().StringVar(&reportsOutputDirFlag, "reports", ".remedy-reports", "directory for stored run reports (empty = don't store)")
	cmd.PersistentFlags().BoolVar(&ttyFlag, "tty", false, "force the interactive TUI even when stdout is not a terminal")

	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 0, "max concurrent file work units (0 = one per file)")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringArrayVarP(&ignoreFlags, "ignore", "i", nil, "issue codes to skip (comma-separated or repeated), or * for all")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "fix and diff without writing files back")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// buildWorkflow assembles the production workflow from the current flag
// values. When the workflow package variable is set (tests swap it in), that
// instance wins.
func buildWorkflow(needFixer bool) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	var fixer adapter.FixerAdapter

	if needFixer {
		apiKey, err := resolveAPIKey()
		if err != nil {
			return nil, err
		}

		fixer = adapter.NewOpenAIFixerAdapter(apiKey, baseURLFlag, modelFlag)
	}

	runUI := ui
	if ttyFlag {
		runUI = controller.NewUI(uiRootCmd(), true)
	}

	linter := adapter.NewLocalLinterAdapter(linterFlag)

	return domain.NewWorkflow(fsAdapter, linter, fixer, reportStore, runUI), nil
}

func resolveAPIKey() (string, error) {
	if apiKeyFlag != "" {
		return apiKeyFlag, nil
	}

	if key := os.Getenv(apiKeyEnvVar); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("api key required: set --api-key or %s", apiKeyEnvVar)
}

func parseRoot(args []string) m.Path {
	if len(args) == 0 {
		return "."
	}

	return m.Path(args[0])
}
