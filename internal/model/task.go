package model

import "fmt"

// TaskType selects the benchmark scenario kind.
type TaskType string

const (
	// TaskTypeMerge is a merge conflict resolution task.
	TaskTypeMerge TaskType = "merge"
	// TaskTypeFileChain is a file commit chain manipulation task.
	TaskTypeFileChain TaskType = "file-chain"
)

// Validate checks the task type is a known one.
func (t TaskType) Validate() error {
	switch t {
	case TaskTypeMerge, TaskTypeFileChain:
		return nil
	}
	return fmt.Errorf("unknown task type %q: %w", string(t), ErrNotValid)
}

// Task is a single solvable benchmark task: a scenario kind, a free-text
// description and the path to a working repository clone. Tasks are created
// by the caller, used for one solve attempt and discarded.
type Task struct {
	Type        TaskType
	Description string
	RepoPath    string
}

// Validate checks the task is complete enough to be solved.
func (t Task) Validate() error {
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if t.RepoPath == "" {
		return fmt.Errorf("repository path is required: %w", ErrNotValid)
	}
	return nil
}

// Scenario holds the fixture information needed to set up and verify a task.
// Merge tasks use the parent commits and the merge commit hash, file chain
// tasks use the file path and the oldest/newest commits of the chain.
type Scenario struct {
	// Merge scenario fields.
	Parents         []string
	MergeCommitHash string
	ConflictFiles   []string

	// File commit chain scenario fields.
	File         string
	OldestCommit string
	NewestCommit string
}

// TaskSpec describes a benchmark task as loaded from a suite file, before
// any repository has been checked out for it.
type TaskSpec struct {
	ID          string
	RepoName    string // GitHub "owner/repo" to clone the fixture from.
	Type        TaskType
	Description string
	Scenario    Scenario
}

// Validate checks the spec has everything the suite runner needs.
func (s TaskSpec) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("task id is required: %w", ErrNotValid)
	}
	if s.RepoName == "" {
		return fmt.Errorf("task repository name is required: %w", ErrNotValid)
	}
	if err := s.Type.Validate(); err != nil {
		return err
	}

	switch s.Type {
	case TaskTypeMerge:
		if len(s.Scenario.Parents) < 2 {
			return fmt.Errorf("merge task %s needs two parent commits: %w", s.ID, ErrNotValid)
		}
		if s.Scenario.MergeCommitHash == "" {
			return fmt.Errorf("merge task %s needs a merge commit hash: %w", s.ID, ErrNotValid)
		}
	case TaskTypeFileChain:
		if s.Scenario.File == "" || s.Scenario.OldestCommit == "" || s.Scenario.NewestCommit == "" {
			return fmt.Errorf("file chain task %s needs file, oldest and newest commits: %w", s.ID, ErrNotValid)
		}
	}

	return nil
}
