package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/casereach/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string

const listLongDescription = `List the module documents found under the given paths with the number of
Select Case statements, Case blocks and clauses each one holds. Nothing is
analyzed and no report is written.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List module documents and statement counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Estimate(domain.EstimateArgs{
				Paths:   parsePaths(args),
				Exclude: excludeSetting(cmd, listExcludeFlags),
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
