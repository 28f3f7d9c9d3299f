// Package cmd provides the root command and CLI setup for casereach.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/casereach/internal/adapter"
	"github.com/mouse-blink/casereach/internal/controller"
	"github.com/mouse-blink/casereach/internal/domain"
	m "github.com/mouse-blink/casereach/internal/model"
)

const defaultReportsDir = ".casereach-reports"

var fsAdapter adapter.SourceFSAdapter
var moduleAdapter adapter.ModuleAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI
var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	moduleAdapter = adapter.NewLocalModuleAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		moduleAdapter,
		reportStore,
		ui,
		logger,
	)
}

var listFlag bool
var parallelFlag int
var shardFlag string
var excludeFlags []string
var failOnFindingsFlag bool
var reportsOutputDirFlag string
var verboseFlag bool
var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "casereach [paths...]",
		Short: "Find unreachable Case blocks in Select Case statements",
		Long: `Casereach reads the Select Case statements of Basic modules, exported as
YAML module documents by the parser front end, and reports Case blocks and
Case Else blocks that no value of the selector can ever reach, together with
Case values that cannot convert to the selector's type.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a.yaml ./b   scan files and directories`,
		SilenceUsage:      true,
		PersistentPreRunE: preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			estimateArgs := domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: excludeSetting(cmd, excludeFlags),
			}
			if listFlag {
				return workflow.Estimate(estimateArgs)
			}

			return runAnalysis(cmd, estimateArgs, runSettings{
				parallel:       parallelFlag,
				shard:          shardFlag,
				failOnFindings: failOnFindingsFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list module documents with their statement and block counts")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringVarP(&shardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&failOnFindingsFlag, "fail-on-findings", false, "exit with an error when any finding is reported")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", defaultReportsDir, "directory for analysis reports")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every analyzed statement")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default "+adapter.DefaultConfigFile+" when present)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels a running analysis; completed statements are still reported.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
