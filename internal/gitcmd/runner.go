package gitcmd

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/shlex"

	"gitbench/internal/log"
	"gitbench/internal/model"
)

const defaultCommandTimeout = 10 * time.Second

// Runner knows how to replay a command list against a repository directory.
type Runner interface {
	Run(ctx context.Context, repoPath string, commands []string) (*model.ExecutionOutcome, error)
}

//go:generate mockery --case underscore --output gitcmdmock --outpkg gitcmdmock --name Runner

// ExecRunnerConfig is the configuration for the exec runner.
type ExecRunnerConfig struct {
	// CommandTimeout bounds each individual command execution.
	CommandTimeout time.Duration
	Logger         log.Logger
}

func (c *ExecRunnerConfig) defaults() error {
	if c.CommandTimeout == 0 {
		c.CommandTimeout = defaultCommandTimeout
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "gitcmd.ExecRunner"})
	return nil
}

// ExecRunner runs commands as subprocesses with the working directory set to
// the repository path.
type ExecRunner struct {
	commandTimeout time.Duration
	logger         log.Logger
}

var _ Runner = (*ExecRunner)(nil)

// NewExecRunner creates a new exec runner.
func NewExecRunner(cfg ExecRunnerConfig) (*ExecRunner, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &ExecRunner{
		commandTimeout: cfg.CommandTimeout,
		logger:         cfg.Logger,
	}, nil
}

// Run executes the commands sequentially, halting permanently at the first
// command that exits non-zero, times out or fails to launch. There is no
// rollback: the repository is left as the last successful command produced
// it. The returned outcome lists every command attempted, including the
// failing one.
func (r *ExecRunner) Run(ctx context.Context, repoPath string, commands []string) (*model.ExecutionOutcome, error) {
	if repoPath == "" {
		return nil, fmt.Errorf("repository path is required: %w", model.ErrNotValid)
	}

	outcome := &model.ExecutionOutcome{}
	for _, command := range commands {
		outcome.Attempted = append(outcome.Attempted, command)

		if err := r.runOne(ctx, repoPath, command); err != nil {
			r.logger.Warningf("Command %q failed: %s", command, err)
			return outcome, nil
		}
	}

	outcome.Success = true
	return outcome, nil
}

func (r *ExecRunner) runOne(ctx context.Context, repoPath, command string) error {
	argv, err := shlex.Split(command)
	if err != nil {
		return fmt.Errorf("could not split command: %w", err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("empty command: %w", model.ErrNotValid)
	}

	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = repoPath

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("command failed (%s): %w", string(out), err)
	}

	r.logger.Debugf("Command %q exited 0", command)
	return nil
}
