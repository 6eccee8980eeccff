// Package runbench runs a benchmark suite: it prepares a repository fixture
// per task, hands the task to the solver and verifies the final repository
// state by content hash, persisting one result per task.
package runbench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"gitbench/internal/app/solve"
	"gitbench/internal/gitrepo"
	"gitbench/internal/log"
	"gitbench/internal/model"
	"gitbench/internal/storage"
)

const defaultCloneDepth = 100

// ServiceConfig is the configuration for the runbench service.
type ServiceConfig struct {
	Solver     solve.Solver
	Git        gitrepo.Git
	Repository storage.ResultRepository
	// WorkDir is where per-task repository clones are created.
	WorkDir string
	// CloneDepth bounds the history depth of fixture clones.
	CloneDepth int
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Solver == nil {
		return fmt.Errorf("solver is required")
	}
	if c.Git == nil {
		return fmt.Errorf("git is required")
	}
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.WorkDir == "" {
		return fmt.Errorf("work dir is required")
	}
	if c.CloneDepth == 0 {
		c.CloneDepth = defaultCloneDepth
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.RunBench"})
	return nil
}

// Service runs benchmark suites.
type Service struct {
	solver     solve.Solver
	git        gitrepo.Git
	repo       storage.ResultRepository
	workDir    string
	cloneDepth int
	logger     log.Logger
}

// NewService creates a new runbench service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		solver:     cfg.Solver,
		git:        cfg.Git,
		repo:       cfg.Repository,
		workDir:    cfg.WorkDir,
		cloneDepth: cfg.CloneDepth,
		logger:     cfg.Logger,
	}, nil
}

// Request contains the parameters for a benchmark run.
type Request struct {
	Specs []model.TaskSpec
	// TaskIDs selects specific tasks; takes precedence over NumTasks.
	TaskIDs []string
	// NumTasks limits the run to the first N tasks, 0 means all.
	NumTasks int
}

// Run executes the selected tasks sequentially and returns the summary.
// A setup or evaluation failure fails that task only, the suite continues.
// Each task's repository clone is exclusive to that task.
func (s *Service) Run(ctx context.Context, req Request) (*model.RunSummary, error) {
	specs := selectSpecs(req)

	summary := &model.RunSummary{Total: len(specs)}
	for i, spec := range specs {
		s.logger.Infof("[%d/%d] Running task %s", i+1, len(specs), spec.ID)

		result := s.runTask(ctx, spec)
		if result.Success {
			summary.Passed++
		}
		summary.Results = append(summary.Results, result)

		if err := s.repo.CreateResult(ctx, result); err != nil {
			return nil, fmt.Errorf("could not store result for task %s: %w", spec.ID, err)
		}

		s.logger.Infof("[%d/%d] Task %s: %s (%s)", i+1, len(specs), spec.ID, passFail(result.Success), result.Duration)
	}

	return summary, nil
}

func (s *Service) runTask(ctx context.Context, spec model.TaskSpec) model.TaskResult {
	start := time.Now()
	result := model.TaskResult{
		ID:        ulid.Make().String(),
		TaskID:    spec.ID,
		TaskType:  spec.Type,
		CreatedAt: start.UTC(),
	}

	finish := func(success bool, attempted int, errMsg string) model.TaskResult {
		result.Success = success
		result.CommandsAttempted = attempted
		result.Error = errMsg
		result.Duration = time.Since(start)
		return result
	}

	if err := spec.Validate(); err != nil {
		return finish(false, 0, err.Error())
	}

	repoDir, err := s.setupTask(ctx, spec)
	if err != nil {
		return finish(false, 0, fmt.Sprintf("setup failed: %s", err))
	}

	outcome, err := s.solver.Run(ctx, solve.Request{Task: model.Task{
		Type:        spec.Type,
		Description: taskDescription(spec),
		RepoPath:    repoDir,
	}})
	if err != nil {
		return finish(false, 0, fmt.Sprintf("solve failed: %s", err))
	}

	if !outcome.Success {
		return finish(false, len(outcome.Attempted), "agent execution failed")
	}

	ok, err := s.evaluate(ctx, spec, repoDir)
	if err != nil {
		return finish(false, len(outcome.Attempted), fmt.Sprintf("evaluation failed: %s", err))
	}

	return finish(ok, len(outcome.Attempted), "")
}

// setupTask prepares the repository fixture for a task: fresh clone plus the
// scenario staging (conflicting merge in progress, or checkout of the oldest
// commit of the file chain). Staging git calls that may legitimately fail on
// shallow history are best effort, like the conflicting merge itself.
func (s *Service) setupTask(ctx context.Context, spec model.TaskSpec) (string, error) {
	taskDir := filepath.Join(s.workDir, sanitizeID(spec.ID))
	if err := os.RemoveAll(taskDir); err != nil {
		return "", fmt.Errorf("could not clean task dir: %w", err)
	}
	if err := os.MkdirAll(taskDir, 0755); err != nil {
		return "", fmt.Errorf("could not create task dir: %w", err)
	}

	repoDir := filepath.Join(taskDir, "repo")
	cloneURL := fmt.Sprintf("https://github.com/%s.git", spec.RepoName)
	if err := s.git.Clone(ctx, cloneURL, repoDir, s.cloneDepth); err != nil {
		return "", err
	}

	if err := s.git.SetConfig(ctx, repoDir, "user.email", "gitbench@localhost"); err != nil {
		return "", err
	}
	if err := s.git.SetConfig(ctx, repoDir, "user.name", "gitbench"); err != nil {
		return "", err
	}

	switch spec.Type {
	case model.TaskTypeMerge:
		if err := s.git.Fetch(ctx, repoDir, spec.Scenario.Parents[0]); err != nil {
			s.logger.Warningf("Fetch of %s failed: %s", spec.Scenario.Parents[0], err)
		}
		if err := s.git.Checkout(ctx, repoDir, spec.Scenario.Parents[0]); err != nil {
			return "", err
		}
		if err := s.git.Fetch(ctx, repoDir, spec.Scenario.Parents[1]); err != nil {
			s.logger.Warningf("Fetch of %s failed: %s", spec.Scenario.Parents[1], err)
		}
		if err := s.git.MergeNoCommit(ctx, repoDir, spec.Scenario.Parents[1]); err != nil {
			return "", err
		}
	case model.TaskTypeFileChain:
		if err := s.git.Fetch(ctx, repoDir, spec.Scenario.OldestCommit); err != nil {
			s.logger.Warningf("Fetch of %s failed: %s", spec.Scenario.OldestCommit, err)
		}
		if err := s.git.Checkout(ctx, repoDir, spec.Scenario.OldestCommit); err != nil {
			return "", err
		}
	}

	return repoDir, nil
}

// evaluate verifies the final repository state: merge tasks compare the
// index tree hash with the target merge commit's tree, file chain tasks
// compare the working file's blob hash with the target blob.
func (s *Service) evaluate(ctx context.Context, spec model.TaskSpec, repoDir string) (bool, error) {
	switch spec.Type {
	case model.TaskTypeMerge:
		if err := s.git.Fetch(ctx, repoDir, spec.Scenario.MergeCommitHash); err != nil {
			s.logger.Warningf("Fetch of %s failed: %s", spec.Scenario.MergeCommitHash, err)
		}

		current, err := s.git.WriteTree(ctx, repoDir)
		if err != nil {
			return false, err
		}
		expected, err := s.git.TreeHash(ctx, repoDir, spec.Scenario.MergeCommitHash)
		if err != nil {
			return false, err
		}
		return current == expected, nil

	case model.TaskTypeFileChain:
		expected, err := s.git.BlobHash(ctx, repoDir, spec.Scenario.NewestCommit, spec.Scenario.File)
		if err != nil {
			return false, err
		}

		if _, err := os.Stat(filepath.Join(repoDir, spec.Scenario.File)); err != nil {
			return false, nil
		}

		current, err := s.git.HashObject(ctx, repoDir, spec.Scenario.File)
		if err != nil {
			return false, err
		}
		return current == expected, nil
	}

	return false, fmt.Errorf("unknown task type %q: %w", string(spec.Type), model.ErrNotValid)
}

// taskDescription returns the spec's description, synthesizing one from the
// scenario when the suite file carries none.
func taskDescription(spec model.TaskSpec) string {
	if spec.Description != "" {
		return spec.Description
	}

	switch spec.Type {
	case model.TaskTypeMerge:
		return fmt.Sprintf("Resolve the merge conflict. Target commit: %s. Files with conflicts: %s.",
			spec.Scenario.MergeCommitHash, strings.Join(spec.Scenario.ConflictFiles, ", "))
	case model.TaskTypeFileChain:
		return fmt.Sprintf("Update the file %s to match its state at commit %s.",
			spec.Scenario.File, spec.Scenario.NewestCommit)
	}

	return ""
}

func selectSpecs(req Request) []model.TaskSpec {
	if len(req.TaskIDs) > 0 {
		wanted := make(map[string]bool, len(req.TaskIDs))
		for _, id := range req.TaskIDs {
			wanted[id] = true
		}

		var specs []model.TaskSpec
		for _, spec := range req.Specs {
			if wanted[spec.ID] {
				specs = append(specs, spec)
			}
		}
		return specs
	}

	if req.NumTasks > 0 && req.NumTasks < len(req.Specs) {
		return req.Specs[:req.NumTasks]
	}

	return req.Specs
}

func sanitizeID(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "/", "_"))
}

func passFail(success bool) string {
	if success {
		return "PASS"
	}
	return "FAIL"
}
