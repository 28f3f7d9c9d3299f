package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/casereach/internal/domain"
)

func TestListCmd(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newListCmd())

	mockWorkflow.EXPECT().Estimate(mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == "./..." &&
			len(args.Exclude) == 1 && args.Exclude[0] == "^tmp/"
	})).Return(nil)

	cmd.SetArgs([]string{"list", "-x", "^tmp/", "./..."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_Error(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newListCmd())

	mockWorkflow.EXPECT().Estimate(mock.Anything).Return(errBoom)

	cmd.SetArgs([]string{"list"})
	require.ErrorIs(t, cmd.Execute(), errBoom)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Long)
}
