package printer

import (
	"encoding/json"
	"io"
	"time"

	"gitbench/internal/model"
)

// JSONPrinter prints benchmark results in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

var _ Printer = (*JSONPrinter)(nil)

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// resultItem represents a task result in JSON output.
type resultItem struct {
	ID                string    `json:"id"`
	TaskID            string    `json:"task_id"`
	TaskType          string    `json:"task_type"`
	Success           bool      `json:"success"`
	CommandsAttempted int       `json:"commands_attempted"`
	ExecutionTimeSec  float64   `json:"execution_time_sec"`
	Error             string    `json:"error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// summaryOutput represents a run summary in JSON output.
type summaryOutput struct {
	Total   int          `json:"total"`
	Passed  int          `json:"passed"`
	Rate    float64      `json:"rate"`
	Results []resultItem `json:"results"`
}

// PrintResultList prints results as a JSON array.
func (p *JSONPrinter) PrintResultList(results []model.TaskResult) error {
	items := make([]resultItem, 0, len(results))
	for _, r := range results {
		items = append(items, newResultItem(r))
	}
	return p.encode(items)
}

// PrintResult prints a single result as a JSON object.
func (p *JSONPrinter) PrintResult(result model.TaskResult) error {
	return p.encode(newResultItem(result))
}

// PrintSummary prints the run summary with its per-task results.
func (p *JSONPrinter) PrintSummary(summary model.RunSummary) error {
	out := summaryOutput{
		Total:   summary.Total,
		Passed:  summary.Passed,
		Rate:    summary.Rate(),
		Results: make([]resultItem, 0, len(summary.Results)),
	}
	for _, r := range summary.Results {
		out.Results = append(out.Results, newResultItem(r))
	}
	return p.encode(out)
}

// PrintMessage prints a simple message as JSON.
func (p *JSONPrinter) PrintMessage(msg string) error {
	return p.encode(map[string]string{"message": msg})
}

func (p *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newResultItem(r model.TaskResult) resultItem {
	return resultItem{
		ID:                r.ID,
		TaskID:            r.TaskID,
		TaskType:          string(r.TaskType),
		Success:           r.Success,
		CommandsAttempted: r.CommandsAttempted,
		ExecutionTimeSec:  r.Duration.Seconds(),
		Error:             r.Error,
		CreatedAt:         r.CreatedAt.UTC(),
	}
}
