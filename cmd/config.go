package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/casereach/internal/adapter"
	"github.com/mouse-blink/casereach/internal/domain"
	m "github.com/mouse-blink/casereach/internal/model"
)

// config holds the values read from the config file by preRun.
var config adapter.Config

// preRun loads the config file and fills every flag the user did not set.
func preRun(cmd *cobra.Command, _ []string) error {
	path, required := configFlag, configFlag != ""
	if path == "" {
		path = adapter.DefaultConfigFile
	}

	cfg, err := adapter.LoadConfig(m.Path(path), required)
	if err != nil {
		return err
	}

	config = cfg

	if !cmd.Flags().Changed("reports") && cfg.Reports != "" {
		reportsOutputDirFlag = cfg.Reports
	}

	if !cmd.Flags().Changed("verbose") && cfg.Verbose {
		verboseFlag = true
	}

	logger.SetLevel(logrus.WarnLevel)
	if verboseFlag {
		logger.SetLevel(logrus.DebugLevel)
	}

	return nil
}

type runSettings struct {
	parallel       int
	shard          string
	failOnFindings bool
}

// runAnalysis merges the run flags with the config file and starts the workflow.
func runAnalysis(cmd *cobra.Command, estimateArgs domain.EstimateArgs, s runSettings) error {
	flags := cmd.Flags()

	if !flags.Changed("parallel") && config.Parallel > 0 {
		s.parallel = config.Parallel
	}

	if !flags.Changed("shard") && config.Shard != "" {
		s.shard = config.Shard
	}

	if !flags.Changed("fail-on-findings") && config.FailOnFindings {
		s.failOnFindings = true
	}

	shardIndex, totalShards := parseShardFlag(s.shard)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := workflow.Run(ctx, domain.RunArgs{
		EstimateArgs:    estimateArgs,
		Reports:         m.Path(reportsOutputDirFlag),
		Threads:         s.parallel,
		ShardIndex:      shardIndex,
		TotalShardCount: totalShards,
		FailOnFindings:  s.failOnFindings,
		Enabled:         config.Enabled,
	})

	return err
}

// excludeSetting returns the --exclude flags, or the config patterns when
// the flag was not given.
func excludeSetting(cmd *cobra.Command, flagValues []string) []string {
	if cmd.Flags().Changed("exclude") || len(config.Exclude) == 0 {
		return flagValues
	}

	return config.Exclude
}
