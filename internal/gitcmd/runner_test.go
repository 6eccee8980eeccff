package gitcmd_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitbench/internal/gitcmd"
	"gitbench/internal/model"
)

func TestExecRunnerRun(t *testing.T) {
	tests := map[string]struct {
		commands       []string
		commandTimeout time.Duration
		expOutcome     *model.ExecutionOutcome
	}{
		"All commands succeeding should attempt all and succeed": {
			commands: []string{"true", "true", "true"},
			expOutcome: &model.ExecutionOutcome{
				Success:   true,
				Attempted: []string{"true", "true", "true"},
			},
		},

		"The first failing command should halt execution": {
			commands: []string{"true", "false", "true"},
			expOutcome: &model.ExecutionOutcome{
				Success:   false,
				Attempted: []string{"true", "false"},
			},
		},

		"A command failing to launch should halt execution": {
			commands: []string{"true", "definitely-not-a-binary-xyz", "true"},
			expOutcome: &model.ExecutionOutcome{
				Success:   false,
				Attempted: []string{"true", "definitely-not-a-binary-xyz"},
			},
		},

		"A command exceeding the timeout should halt execution": {
			commands:       []string{"sleep 5", "true"},
			commandTimeout: 50 * time.Millisecond,
			expOutcome: &model.ExecutionOutcome{
				Success:   false,
				Attempted: []string{"sleep 5"},
			},
		},

		"A command with unbalanced quotes should halt execution": {
			commands: []string{`git commit -m 'unterminated`},
			expOutcome: &model.ExecutionOutcome{
				Success:   false,
				Attempted: []string{`git commit -m 'unterminated`},
			},
		},

		"An empty command list should succeed with nothing attempted": {
			commands: nil,
			expOutcome: &model.ExecutionOutcome{
				Success:   true,
				Attempted: nil,
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			runner, err := gitcmd.NewExecRunner(gitcmd.ExecRunnerConfig{
				CommandTimeout: test.commandTimeout,
			})
			require.NoError(err)

			outcome, err := runner.Run(context.Background(), t.TempDir(), test.commands)

			require.NoError(err)
			assert.Equal(test.expOutcome, outcome)
		})
	}
}

func TestExecRunnerRunRequiresRepoPath(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	runner, err := gitcmd.NewExecRunner(gitcmd.ExecRunnerConfig{})
	require.NoError(err)

	outcome, err := runner.Run(context.Background(), "", []string{"true"})

	assert.Error(err)
	assert.ErrorIs(err, model.ErrNotValid)
	assert.Nil(outcome)
}

func TestExecRunnerRunsInRepoDir(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	runner, err := gitcmd.NewExecRunner(gitcmd.ExecRunnerConfig{})
	require.NoError(err)

	outcome, err := runner.Run(context.Background(), dir, []string{"touch marker.txt", "test -f marker.txt"})

	require.NoError(err)
	assert.True(outcome.Success)
	assert.FileExists(dir + "/marker.txt")
}
