package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"gitbench/internal/app/resultlist"
	"gitbench/internal/printer"
	"gitbench/internal/storage/sqlite"
)

type ResultsListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewResultsListCommand returns the results list command.
func NewResultsListCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *ResultsListCommand {
	c := &ResultsListCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("list", "List stored task results.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c ResultsListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ResultsListCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Create list service.
	svc, err := resultlist.NewService(resultlist.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute list.
	results, err := svc.List(ctx)
	if err != nil {
		return fmt.Errorf("could not list results: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintResultList(results); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
