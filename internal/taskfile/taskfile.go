// Package taskfile loads task definitions from the filesystem: single task
// description files for one-shot solves and suite files for benchmark runs.
package taskfile

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gitbench/internal/model"
)

// description is the shape of a single-task description file.
type description struct {
	Description string `json:"description"`
}

// LoadDescription reads the free-text task description from a JSON task file.
func LoadDescription(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read task file: %w", err)
	}

	var d description
	if err := json.Unmarshal(data, &d); err != nil {
		return "", fmt.Errorf("could not parse task file %s: %w", path, err)
	}

	return d.Description, nil
}

// suiteTask is the on-disk shape of a suite task spec.
type suiteTask struct {
	ID          string        `yaml:"id"`
	Repo        string        `yaml:"repo"`
	Type        string        `yaml:"type"`
	Description string        `yaml:"description"`
	Scenario    suiteScenario `yaml:"scenario"`
}

type suiteScenario struct {
	Parents         []string `yaml:"parents"`
	MergeCommitHash string   `yaml:"merge_commit_hash"`
	ConflictFiles   []string `yaml:"conflict_files"`
	File            string   `yaml:"file"`
	OldestCommit    string   `yaml:"oldest_commit"`
	NewestCommit    string   `yaml:"newest_commit"`
}

// LoadSuite reads a benchmark suite file (YAML, JSON works too) and returns
// the validated task specs in file order.
func LoadSuite(path string) ([]model.TaskSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read suite file: %w", err)
	}

	var tasks []suiteTask
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("could not parse suite file %s: %w", path, err)
	}

	specs := make([]model.TaskSpec, 0, len(tasks))
	for _, t := range tasks {
		spec := model.TaskSpec{
			ID:          t.ID,
			RepoName:    t.Repo,
			Type:        model.TaskType(t.Type),
			Description: t.Description,
			Scenario: model.Scenario{
				Parents:         t.Scenario.Parents,
				MergeCommitHash: t.Scenario.MergeCommitHash,
				ConflictFiles:   t.Scenario.ConflictFiles,
				File:            t.Scenario.File,
				OldestCommit:    t.Scenario.OldestCommit,
				NewestCommit:    t.Scenario.NewestCommit,
			},
		}

		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid task spec in %s: %w", path, err)
		}

		specs = append(specs, spec)
	}

	return specs, nil
}
