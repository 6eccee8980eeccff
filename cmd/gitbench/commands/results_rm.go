package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"gitbench/internal/app/resultrm"
	"gitbench/internal/printer"
	"gitbench/internal/storage/sqlite"
)

type ResultsRmCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	resultID string
}

// NewResultsRmCommand returns the results rm command.
func NewResultsRmCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *ResultsRmCommand {
	c := &ResultsRmCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("rm", "Remove a stored task result.")
	c.Cmd.Arg("result-id", "Result ID.").Required().StringVar(&c.resultID)

	return c
}

func (c ResultsRmCommand) Name() string { return c.Cmd.FullCommand() }

func (c ResultsRmCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Create remove service.
	svc, err := resultrm.NewService(resultrm.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute remove.
	if err := svc.Remove(ctx, c.resultID); err != nil {
		return fmt.Errorf("could not remove result: %w", err)
	}

	// Print success message.
	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	if err := p.PrintMessage(fmt.Sprintf("Removed result: %s", c.resultID)); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
