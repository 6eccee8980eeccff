package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"

	"gitbench/internal/app/runbench"
	"gitbench/internal/app/solve"
	"gitbench/internal/completion/codex"
	"gitbench/internal/gitcmd"
	"gitbench/internal/gitrepo"
	"gitbench/internal/printer"
	"gitbench/internal/storage/sqlite"
	"gitbench/internal/taskfile"
)

type RunCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	suiteFile string
	workDir   string
	numTasks  int
	taskIDs   []string
	format    string
	output    string
}

// NewRunCommand returns the run command.
func NewRunCommand(rootCmd *RootCommand, app *kingpin.Application) *RunCommand {
	c := &RunCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("run", "Run a benchmark suite from a task file.")
	c.Cmd.Arg("suite-file", "YAML or JSON file with the task suite.").Required().StringVar(&c.suiteFile)
	c.Cmd.Flag("work-dir", "Directory for per-task repository clones.").Default(filepath.Join(os.TempDir(), "gitbench")).StringVar(&c.workDir)
	c.Cmd.Flag("num-tasks", "Limit the run to the first N tasks.").IntVar(&c.numTasks)
	c.Cmd.Flag("task-id", "Run only the given task ids (repeatable).").StringsVar(&c.taskIDs)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")
	c.Cmd.Flag("output", "Write the JSON summary to a file as well.").StringVar(&c.output)

	return c
}

func (c RunCommand) Name() string { return c.Cmd.FullCommand() }

func (c RunCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Load the suite.
	specs, err := taskfile.LoadSuite(c.suiteFile)
	if err != nil {
		return fmt.Errorf("could not load suite: %w", err)
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
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

	// Initialize the git fixture manager.
	git, err := gitrepo.NewCLI(gitrepo.CLIConfig{
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create git client: %w", err)
	}

	// Create solve service.
	solveSvc, err := solve.NewService(solve.ServiceConfig{
		Completer: completer,
		Runner:    runner,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("could not create solve service: %w", err)
	}

	// Create runbench service.
	svc, err := runbench.NewService(runbench.ServiceConfig{
		Solver:     solveSvc,
		Git:        git,
		Repository: repo,
		WorkDir:    c.workDir,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute the run.
	summary, err := svc.Run(ctx, runbench.Request{
		Specs:    specs,
		TaskIDs:  c.taskIDs,
		NumTasks: c.numTasks,
	})
	if err != nil {
		return fmt.Errorf("could not run suite: %w", err)
	}

	// Print summary.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default: // table
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintSummary(*summary); err != nil {
		return fmt.Errorf("could not print summary: %w", err)
	}

	// Optionally persist the JSON summary to a file.
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer f.Close()

		if err := printer.NewJSONPrinter(f).PrintSummary(*summary); err != nil {
			return fmt.Errorf("could not write summary file: %w", err)
		}
		logger.Infof("Summary written to %s", c.output)
	}

	return nil
}
