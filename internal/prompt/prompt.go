// Package prompt builds the natural-language prompts sent to the completion
// endpoint. There is exactly one fixed template per task type and the choice
// is a pure function of the task type.
package prompt

import (
	"fmt"

	"gitbench/internal/model"
)

const mergeTemplate = `
You are an expert Git user solving merge conflict resolution tasks.

Task Description:
%s

Repository: %s

Instructions:
1. Analyze the merge conflict
2. Generate appropriate git commands to resolve it
3. Ensure the final state matches the target commit

Provide ONLY the git commands (one per line, without bash prompt markers):
`

const fileChainTemplate = `
You are an expert Git user solving file commit chain manipulation tasks.

Task Description:
%s

Repository: %s

Instructions:
1. Understand the target file state
2. Generate git commands to achieve it
3. Manipulate commits and file history as needed
4. Ensure the final file matches the target state

Provide ONLY the git commands (one per line, without bash prompt markers):
`

// Build returns the prompt for a task. It fails on unknown task types.
func Build(taskType model.TaskType, description, repoPath string) (string, error) {
	switch taskType {
	case model.TaskTypeMerge:
		return fmt.Sprintf(mergeTemplate, description, repoPath), nil
	case model.TaskTypeFileChain:
		return fmt.Sprintf(fileChainTemplate, description, repoPath), nil
	}

	return "", fmt.Errorf("no prompt template for task type %q: %w", string(taskType), model.ErrNotValid)
}
