package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/casereach/internal/domain"
)

var runParallelFlag int
var runShardFlag string
var runExcludeFlags []string
var runFailOnFindingsFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

const runLongDescription = `Analyze every Select Case statement of the module documents under the given
paths and save one report per document to the reports directory.

Statements are analyzed in parallel. An interrupt stops the run between
statements; the findings of completed statements are still saved.`

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Analyze Select Case statements",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: excludeSetting(cmd, runExcludeFlags),
			}, runSettings{
				parallel:       runParallelFlag,
				shard:          runShardFlag,
				failOnFindings: runFailOnFindingsFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringVarP(&runShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringArrayVarP(&runExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVar(&runFailOnFindingsFlag, "fail-on-findings", false, "exit with an error when any finding is reported")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
