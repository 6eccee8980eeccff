package model

import "time"

// ExecutionOutcome is the result of replaying a command list against a
// repository. Success is true only if every command exited zero. Attempted
// holds the commands actually run, in order, up to and including the first
// failing one. There is no partial-state rollback: the repository is left
// as the last successful command produced it.
type ExecutionOutcome struct {
	Success   bool
	Attempted []string
}

// TaskResult is the stored record of one benchmark task attempt.
type TaskResult struct {
	ID                string
	TaskID            string
	TaskType          TaskType
	Success           bool
	CommandsAttempted int
	Duration          time.Duration
	Error             string
	CreatedAt         time.Time
}

// RunSummary aggregates the results of a benchmark run.
type RunSummary struct {
	Total   int
	Passed  int
	Results []TaskResult
}

// Rate returns the pass rate of the run in [0, 1].
func (s RunSummary) Rate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total)
}
