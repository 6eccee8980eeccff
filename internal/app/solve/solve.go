// Package solve implements the task driver: build the prompt, get a
// completion, extract the command lines and replay them against the task's
// repository clone.
package solve

import (
	"context"
	"fmt"

	"gitbench/internal/completion"
	"gitbench/internal/gitcmd"
	"gitbench/internal/log"
	"gitbench/internal/model"
	"gitbench/internal/prompt"
)

// Solver knows how to run one benchmark task end to end.
type Solver interface {
	Run(ctx context.Context, req Request) (*model.ExecutionOutcome, error)
}

//go:generate mockery --case underscore --output solvemock --outpkg solvemock --name Solver

// ServiceConfig is the configuration for the solve service.
type ServiceConfig struct {
	Completer completion.Completer
	Runner    gitcmd.Runner
	Logger    log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Completer == nil {
		return fmt.Errorf("completer is required")
	}
	if c.Runner == nil {
		return fmt.Errorf("runner is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Solve"})
	return nil
}

// Service drives a single task solve attempt.
type Service struct {
	completer completion.Completer
	runner    gitcmd.Runner
	logger    log.Logger
}

var _ Solver = (*Service)(nil)

// NewService creates a new solve service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		completer: cfg.Completer,
		runner:    cfg.Runner,
		logger:    cfg.Logger,
	}, nil
}

// Request contains the parameters for solving a task.
type Request struct {
	Task model.Task
}

// Run solves a single task. The flow is strictly linear: prompt, remote
// completion, command extraction, sequential execution. An empty completion
// short-circuits to a failed outcome with zero commands attempted. Remote
// failures never surface here as errors, only unknown task types and invalid
// requests do.
func (s *Service) Run(ctx context.Context, req Request) (*model.ExecutionOutcome, error) {
	// 1. Validate the task.
	if err := req.Task.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	// 2. Build the prompt for the task type.
	p, err := prompt.Build(req.Task.Type, req.Task.Description, req.Task.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("could not build prompt: %w", err)
	}

	// 3. Get the completion.
	text, err := s.completer.Complete(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("could not get completion: %w", err)
	}

	// 4. Extract the command lines. Empty means the endpoint produced
	// nothing usable (or the call failed, indistinguishable by contract).
	commands := gitcmd.Extract(text)
	if len(commands) == 0 {
		s.logger.Debugf("No commands extracted from completion")
		return &model.ExecutionOutcome{}, nil
	}
	commands = gitcmd.Normalize(commands)

	// 5. Replay the commands against the repository.
	outcome, err := s.runner.Run(ctx, req.Task.RepoPath, commands)
	if err != nil {
		return nil, fmt.Errorf("could not run commands: %w", err)
	}

	s.logger.Debugf("Solved task in %s: success=%t, commands=%d", req.Task.RepoPath, outcome.Success, len(outcome.Attempted))

	return outcome, nil
}
