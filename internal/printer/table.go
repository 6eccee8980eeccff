package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gitbench/internal/model"
)

// TablePrinter prints benchmark results in a table format.
type TablePrinter struct {
	writer io.Writer
}

var _ Printer = (*TablePrinter)(nil)

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintResultList prints results in a table format.
func (t *TablePrinter) PrintResultList(results []model.TaskResult) error {
	if len(results) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "ID\tTASK\tTYPE\tRESULT\tCMDS\tDURATION\tCREATED")

	// Print rows
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID,
			r.TaskID,
			r.TaskType,
			passFail(r.Success),
			r.CommandsAttempted,
			FormatDuration(r.Duration),
			TimeAgo(r.CreatedAt),
		)
	}

	return nil
}

// PrintResult prints a detailed single result.
func (t *TablePrinter) PrintResult(result model.TaskResult) error {
	fmt.Fprintf(t.writer, "ID:         %s\n", result.ID)
	fmt.Fprintf(t.writer, "Task:       %s\n", result.TaskID)
	fmt.Fprintf(t.writer, "Type:       %s\n", result.TaskType)
	fmt.Fprintf(t.writer, "Result:     %s\n", passFail(result.Success))
	fmt.Fprintf(t.writer, "Commands:   %d attempted\n", result.CommandsAttempted)
	fmt.Fprintf(t.writer, "Duration:   %s\n", FormatDuration(result.Duration))
	fmt.Fprintf(t.writer, "Created:    %s\n", FormatTimestamp(result.CreatedAt))

	if result.Error != "" {
		fmt.Fprintf(t.writer, "Error:      %s\n", result.Error)
	}

	return nil
}

// PrintSummary prints a run summary line.
func (t *TablePrinter) PrintSummary(summary model.RunSummary) error {
	fmt.Fprintf(t.writer, "Result: %d/%d passed (%.1f%%)\n", summary.Passed, summary.Total, summary.Rate()*100)
	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}

func passFail(success bool) string {
	if success {
		return "PASS"
	}
	return "FAIL"
}
