package printer

import "gitbench/internal/model"

// Printer knows how to print benchmark result information in different formats.
type Printer interface {
	PrintResultList(results []model.TaskResult) error
	PrintResult(result model.TaskResult) error
	PrintSummary(summary model.RunSummary) error
	PrintMessage(msg string) error
}
