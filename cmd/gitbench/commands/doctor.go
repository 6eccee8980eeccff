package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"gitbench/internal/gitrepo"
	"gitbench/internal/model"
)

type DoctorCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewDoctorCommand returns the doctor command.
func NewDoctorCommand(rootCmd *RootCommand, app *kingpin.Application) *DoctorCommand {
	c := &DoctorCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("doctor", "Run preflight checks for the benchmark environment.")

	return c
}

func (c DoctorCommand) Name() string { return c.Cmd.FullCommand() }

func (c DoctorCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger
	out := c.rootCmd.Stdout

	var results []model.CheckResult

	// Check git availability.
	git, err := gitrepo.NewCLI(gitrepo.CLIConfig{Logger: logger})
	if err != nil {
		return fmt.Errorf("could not create git client: %w", err)
	}
	results = append(results, git.Check(ctx)...)

	// Check API key presence.
	if c.rootCmd.APIKey == "" {
		results = append(results, model.CheckResult{
			ID:      "api-key",
			Status:  model.CheckStatusError,
			Message: "no API key configured (set --api-key or OPENAI_API_KEY)",
		})
	} else {
		results = append(results, model.CheckResult{
			ID:      "api-key",
			Status:  model.CheckStatusOK,
			Message: "API key is configured",
		})
	}

	// Check the database directory is writable.
	dbDir := filepath.Dir(c.rootCmd.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		results = append(results, model.CheckResult{
			ID:      "db-dir",
			Status:  model.CheckStatusError,
			Message: fmt.Sprintf("database directory is not writable: %s", err),
		})
	} else {
		results = append(results, model.CheckResult{
			ID:      "db-dir",
			Status:  model.CheckStatusOK,
			Message: fmt.Sprintf("database directory is writable (%s)", dbDir),
		})
	}

	// Print results.
	totalErrors := 0
	totalWarnings := 0

	fmt.Fprintf(out, "Checking benchmark environment...\n")
	for _, r := range results {
		icon := getStatusIcon(r.Status)
		fmt.Fprintf(out, "  %s %-20s %s\n", icon, r.ID, r.Message)

		switch r.Status {
		case model.CheckStatusError:
			totalErrors++
		case model.CheckStatusWarning:
			totalWarnings++
		}
	}

	// Summary.
	fmt.Fprintln(out)
	switch {
	case totalErrors == 0 && totalWarnings == 0:
		fmt.Fprintln(out, "All checks passed!")
	case totalErrors > 0 && totalWarnings > 0:
		fmt.Fprintf(out, "%d error(s), %d warning(s)\n", totalErrors, totalWarnings)
	case totalErrors > 0:
		fmt.Fprintf(out, "%d error(s)\n", totalErrors)
	default:
		fmt.Fprintf(out, "%d warning(s)\n", totalWarnings)
	}

	if totalErrors > 0 {
		return fmt.Errorf("preflight checks failed with %d error(s)", totalErrors)
	}

	return nil
}

func getStatusIcon(status model.CheckStatus) string {
	switch status {
	case model.CheckStatusOK:
		return "OK"
	case model.CheckStatusWarning:
		return "!!"
	case model.CheckStatusError:
		return "XX"
	default:
		return "??"
	}
}
