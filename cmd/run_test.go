package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/casereach/internal/domain"
	m "github.com/mouse-blink/casereach/internal/model"
)

func TestRunCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Threads == 1 &&
			args.TotalShardCount == 1 &&
			args.Reports == m.Path(defaultReportsDir) &&
			len(args.Paths) == 1 && args.Paths[0] == "."
	})).Return(domain.BatchResult{}, nil)

	cmd.SetArgs([]string{"run"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_WithSharding(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.ShardIndex == 1 && args.TotalShardCount == 3 && args.Threads == 2
	})).Return(domain.BatchResult{}, nil)

	cmd.SetArgs([]string{"run", "--shard", "1/3", "--parallel", "2", "./..."})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_MultiplePathsAndExcludes(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == "./forms" &&
			args.Paths[1] == "./modules/..." &&
			len(args.Exclude) == 2 &&
			args.Exclude[0] == "^legacy_" &&
			args.Exclude[1] == `_old\.yaml$`
	})).Return(domain.BatchResult{}, nil)

	cmd.SetArgs([]string{"run", "-x", "^legacy_", "-x", `_old\.yaml$`, "./forms", "./modules/..."})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_ReportsFlagOnParent(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Reports == "custom"
	})).Return(domain.BatchResult{}, nil)

	cmd.SetArgs([]string{"run", "--reports", "custom"})
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_Error(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.BatchResult{Abandoned: true}, errBoom)

	cmd.SetArgs([]string{"run"})
	require.ErrorIs(t, cmd.Execute(), errBoom)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("parallel"))
	assert.NotNil(t, cmd.Flags().Lookup("shard"))
	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
	assert.NotNil(t, cmd.Flags().Lookup("fail-on-findings"))
}
