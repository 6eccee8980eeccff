package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitbench/internal/app/solve"
	"gitbench/internal/completion/completionmock"
	"gitbench/internal/gitcmd/gitcmdmock"
	"gitbench/internal/log"
	"gitbench/internal/model"
)

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		cfg    solve.ServiceConfig
		expErr bool
	}{
		"Valid configuration should create service successfully": {
			cfg: solve.ServiceConfig{
				Completer: &completionmock.MockCompleter{},
				Runner:    &gitcmdmock.MockRunner{},
				Logger:    log.Noop,
			},
		},

		"Missing completer should fail": {
			cfg: solve.ServiceConfig{
				Runner: &gitcmdmock.MockRunner{},
			},
			expErr: true,
		},

		"Missing runner should fail": {
			cfg: solve.ServiceConfig{
				Completer: &completionmock.MockCompleter{},
			},
			expErr: true,
		},

		"Missing logger should use noop logger": {
			cfg: solve.ServiceConfig{
				Completer: &completionmock.MockCompleter{},
				Runner:    &gitcmdmock.MockRunner{},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			svc, err := solve.NewService(test.cfg)

			if test.expErr {
				assert.Error(err)
				assert.Nil(svc)
			} else {
				assert.NoError(err)
				assert.NotNil(svc)
			}
		})
	}
}

func TestServiceRun(t *testing.T) {
	mergeTask := model.Task{
		Type:        model.TaskTypeMerge,
		Description: "resolve conflict in file.txt",
		RepoPath:    "/tmp/repo1",
	}

	tests := map[string]struct {
		mock       func(mCompleter *completionmock.MockCompleter, mRunner *gitcmdmock.MockRunner)
		req        solve.Request
		expOutcome *model.ExecutionOutcome
		expErr     bool
	}{
		"A completion with commands that all succeed should succeed": {
			req: solve.Request{Task: mergeTask},
			mock: func(mCompleter *completionmock.MockCompleter, mRunner *gitcmdmock.MockRunner) {
				mCompleter.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
					return len(p) > 0
				})).Once().Return("git checkout --theirs file.txt\ngit add file.txt\ngit commit -m 'resolve'\n", nil)

				expCmds := []string{
					"git checkout --theirs file.txt",
					"git add file.txt",
					"git commit -m 'resolve'",
				}
				outcome := &model.ExecutionOutcome{Success: true, Attempted: expCmds}
				mRunner.On("Run", mock.Anything, "/tmp/repo1", expCmds).Once().Return(outcome, nil)
			},
			expOutcome: &model.ExecutionOutcome{
				Success: true,
				Attempted: []string{
					"git checkout --theirs file.txt",
					"git add file.txt",
					"git commit -m 'resolve'",
				},
			},
		},

		"Bare subcommands in the completion should be normalized before running": {
			req: solve.Request{Task: mergeTask},
			mock: func(mCompleter *completionmock.MockCompleter, mRunner *gitcmdmock.MockRunner) {
				mCompleter.On("Complete", mock.Anything, mock.Anything).Once().Return("checkout --theirs file.txt\nadd file.txt\n", nil)

				expCmds := []string{"git checkout --theirs file.txt", "git add file.txt"}
				outcome := &model.ExecutionOutcome{Success: true, Attempted: expCmds}
				mRunner.On("Run", mock.Anything, "/tmp/repo1", expCmds).Once().Return(outcome, nil)
			},
			expOutcome: &model.ExecutionOutcome{
				Success:   true,
				Attempted: []string{"git checkout --theirs file.txt", "git add file.txt"},
			},
		},

		"An empty completion should fail with zero commands attempted": {
			req: solve.Request{Task: mergeTask},
			mock: func(mCompleter *completionmock.MockCompleter, mRunner *gitcmdmock.MockRunner) {
				mCompleter.On("Complete", mock.Anything, mock.Anything).Once().Return("", nil)
			},
			expOutcome: &model.ExecutionOutcome{},
		},

		"A completion with only blank lines should fail with zero commands attempted": {
			req: solve.Request{Task: mergeTask},
			mock: func(mCompleter *completionmock.MockCompleter, mRunner *gitcmdmock.MockRunner) {
				mCompleter.On("Complete", mock.Anything, mock.Anything).Once().Return("\n  \n\t\n", nil)
			},
			expOutcome: &model.ExecutionOutcome{},
		},

		"A failing command should surface the partial outcome": {
			req: solve.Request{Task: mergeTask},
			mock: func(mCompleter *completionmock.MockCompleter, mRunner *gitcmdmock.MockRunner) {
				mCompleter.On("Complete", mock.Anything, mock.Anything).Once().Return("git add file.txt\ngit commit -m x\n", nil)

				outcome := &model.ExecutionOutcome{
					Success:   false,
					Attempted: []string{"git add file.txt"},
				}
				mRunner.On("Run", mock.Anything, "/tmp/repo1", mock.Anything).Once().Return(outcome, nil)
			},
			expOutcome: &model.ExecutionOutcome{
				Success:   false,
				Attempted: []string{"git add file.txt"},
			},
		},

		"An unknown task type should fail without calling the endpoint": {
			req: solve.Request{Task: model.Task{
				Type:     model.TaskType("rebase"),
				RepoPath: "/tmp/repo1",
			}},
			mock:   func(mCompleter *completionmock.MockCompleter, mRunner *gitcmdmock.MockRunner) {},
			expErr: true,
		},

		"A task without repository path should fail without calling the endpoint": {
			req: solve.Request{Task: model.Task{
				Type: model.TaskTypeMerge,
			}},
			mock:   func(mCompleter *completionmock.MockCompleter, mRunner *gitcmdmock.MockRunner) {},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			mCompleter := &completionmock.MockCompleter{}
			mRunner := &gitcmdmock.MockRunner{}
			test.mock(mCompleter, mRunner)

			svc, err := solve.NewService(solve.ServiceConfig{
				Completer: mCompleter,
				Runner:    mRunner,
			})
			require.NoError(err)

			outcome, err := svc.Run(context.Background(), test.req)

			if test.expErr {
				assert.Error(err)
				assert.Nil(outcome)
			} else {
				require.NoError(err)
				assert.Equal(test.expOutcome, outcome)
			}

			mCompleter.AssertExpectations(t)
			mRunner.AssertExpectations(t)
		})
	}
}
