package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"gitbench/internal/app/solve"
	"gitbench/internal/completion/codex"
	"gitbench/internal/gitcmd"
	"gitbench/internal/model"
	"gitbench/internal/printer"
	"gitbench/internal/taskfile"
)

type SolveCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	taskType    string
	repoPath    string
	description string
	taskFile    string
}

// NewSolveCommand returns the solve command.
func NewSolveCommand(rootCmd *RootCommand, app *kingpin.Application) *SolveCommand {
	c := &SolveCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("solve", "Solve a single task against a local repository clone.")
	c.Cmd.Flag("task-type", "Task type (merge, file-chain).").Required().EnumVar(&c.taskType, string(model.TaskTypeMerge), string(model.TaskTypeFileChain))
	c.Cmd.Flag("repo-path", "Path to the repository clone the task runs against.").Required().StringVar(&c.repoPath)
	c.Cmd.Flag("description", "Task description.").StringVar(&c.description)
	c.Cmd.Flag("task-file", "JSON file with the task description (alternative to --description).").StringVar(&c.taskFile)

	return c
}

func (c SolveCommand) Name() string { return c.Cmd.FullCommand() }

func (c SolveCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	description := c.description
	if description == "" && c.taskFile != "" {
		var err error
		description, err = taskfile.LoadDescription(c.taskFile)
		if err != nil {
			return fmt.Errorf("could not load task file: %w", err)
		}
	}

	// Initialize the completion client.
	completer, err := codex.NewClient(codex.ClientConfig{
		APIKey:  c.rootCmd.APIKey,
		Model:   c.rootCmd.Model,
		BaseURL: c.rootCmd.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("could not create completion client: %w", err)
	}

	// Initialize the command runner.
	runner, err := gitcmd.NewExecRunner(gitcmd.ExecRunnerConfig{
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create command runner: %w", err)
	}

	// Create solve service.
	svc, err := solve.NewService(solve.ServiceConfig{
		Completer: completer,
		Runner:    runner,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute solve.
	outcome, err := svc.Run(ctx, solve.Request{Task: model.Task{
		Type:        model.TaskType(c.taskType),
		Description: description,
		RepoPath:    c.repoPath,
	}})
	if err != nil {
		return fmt.Errorf("could not solve task: %w", err)
	}

	// Print outcome.
	p := printer.NewTablePrinter(c.rootCmd.Stdout)
	for _, cmd := range outcome.Attempted {
		if err := p.PrintMessage(fmt.Sprintf("  $ %s", cmd)); err != nil {
			return fmt.Errorf("could not print message: %w", err)
		}
	}

	if !outcome.Success {
		if err := p.PrintMessage(fmt.Sprintf("Task failed after %d command(s)", len(outcome.Attempted))); err != nil {
			return fmt.Errorf("could not print message: %w", err)
		}
		return fmt.Errorf("task failed")
	}

	if err := p.PrintMessage(fmt.Sprintf("Task solved, %d command(s) executed", len(outcome.Attempted))); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}

	return nil
}
