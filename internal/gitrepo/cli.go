package gitrepo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"gitbench/internal/log"
	"gitbench/internal/model"
)

const (
	defaultGitBin       = "git"
	defaultCloneTimeout = 5 * time.Minute
	defaultOpTimeout    = 30 * time.Second
)

// CLIConfig is the configuration for the git CLI implementation.
type CLIConfig struct {
	// GitBin is the git binary to invoke.
	GitBin string
	// CloneTimeout bounds clone operations (network heavy).
	CloneTimeout time.Duration
	// OpTimeout bounds every other git operation.
	OpTimeout time.Duration
	Logger    log.Logger
}

func (c *CLIConfig) defaults() error {
	if c.GitBin == "" {
		c.GitBin = defaultGitBin
	}
	if c.CloneTimeout == 0 {
		c.CloneTimeout = defaultCloneTimeout
	}
	if c.OpTimeout == 0 {
		c.OpTimeout = defaultOpTimeout
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "gitrepo.CLI"})
	return nil
}

// CLI is a Git implementation that shells out to the git binary.
type CLI struct {
	gitBin       string
	cloneTimeout time.Duration
	opTimeout    time.Duration
	logger       log.Logger
}

var _ Git = (*CLI)(nil)

// NewCLI creates a new git CLI wrapper.
func NewCLI(cfg CLIConfig) (*CLI, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &CLI{
		gitBin:       cfg.GitBin,
		cloneTimeout: cfg.CloneTimeout,
		opTimeout:    cfg.OpTimeout,
		logger:       cfg.Logger,
	}, nil
}

func (c *CLI) Clone(ctx context.Context, url, dir string, depth int) error {
	args := []string{"clone"}
	if depth > 0 {
		args = append(args, "--depth", fmt.Sprintf("%d", depth))
	}
	args = append(args, url, dir)

	_, err := c.run(ctx, "", c.cloneTimeout, args...)
	if err != nil {
		return fmt.Errorf("could not clone %s: %w", url, err)
	}
	return nil
}

func (c *CLI) SetConfig(ctx context.Context, dir, key, value string) error {
	_, err := c.run(ctx, dir, c.opTimeout, "config", key, value)
	if err != nil {
		return fmt.Errorf("could not set config %s: %w", key, err)
	}
	return nil
}

func (c *CLI) Fetch(ctx context.Context, dir, ref string) error {
	_, err := c.run(ctx, dir, c.cloneTimeout, "fetch", "origin", ref)
	if err != nil {
		return fmt.Errorf("could not fetch %s: %w", ref, err)
	}
	return nil
}

func (c *CLI) Checkout(ctx context.Context, dir, ref string) error {
	_, err := c.run(ctx, dir, c.opTimeout, "checkout", ref)
	if err != nil {
		return fmt.Errorf("could not checkout %s: %w", ref, err)
	}
	return nil
}

// MergeNoCommit merges without committing. Git exits non-zero when the merge
// leaves conflicts, which for fixture setup is the expected situation, so
// exit status is ignored here.
func (c *CLI) MergeNoCommit(ctx context.Context, dir, ref string) error {
	_, _ = c.run(ctx, dir, c.opTimeout, "merge", ref, "--no-commit")
	return nil
}

func (c *CLI) WriteTree(ctx context.Context, dir string) (string, error) {
	out, err := c.run(ctx, dir, c.opTimeout, "write-tree")
	if err != nil {
		return "", fmt.Errorf("could not write tree: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func (c *CLI) TreeHash(ctx context.Context, dir, commit string) (string, error) {
	out, err := c.run(ctx, dir, c.opTimeout, "rev-parse", commit+"^{tree}")
	if err != nil {
		return "", fmt.Errorf("could not resolve tree of %s: %w", commit, err)
	}
	return strings.TrimSpace(out), nil
}

// BlobHash parses `git ls-tree -r <commit> -- <path>` output, whose lines
// look like: `100644 blob <hash>\t<path>`.
func (c *CLI) BlobHash(ctx context.Context, dir, commit, path string) (string, error) {
	out, err := c.run(ctx, dir, c.opTimeout, "ls-tree", "-r", commit, "--", path)
	if err != nil {
		return "", fmt.Errorf("could not list tree of %s: %w", commit, err)
	}

	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) < 3 {
		return "", fmt.Errorf("file %s not found at commit %s: %w", path, commit, model.ErrNotFound)
	}
	return fields[2], nil
}

func (c *CLI) HashObject(ctx context.Context, dir, path string) (string, error) {
	out, err := c.run(ctx, dir, c.opTimeout, "hash-object", path)
	if err != nil {
		return "", fmt.Errorf("could not hash %s: %w", path, err)
	}
	return strings.TrimSpace(out), nil
}

// Check runs the git preflight checks.
func (c *CLI) Check(ctx context.Context) []model.CheckResult {
	var results []model.CheckResult

	path, err := exec.LookPath(c.gitBin)
	if err != nil {
		results = append(results, model.CheckResult{
			ID:      "git_binary",
			Status:  model.CheckStatusError,
			Message: fmt.Sprintf("%q not found in PATH", c.gitBin),
		})
		return results
	}
	results = append(results, model.CheckResult{
		ID:      "git_binary",
		Status:  model.CheckStatusOK,
		Message: path,
	})

	out, err := c.run(ctx, "", c.opTimeout, "version")
	if err != nil {
		results = append(results, model.CheckResult{
			ID:      "git_version",
			Status:  model.CheckStatusWarning,
			Message: fmt.Sprintf("could not get git version: %s", err),
		})
		return results
	}
	results = append(results, model.CheckResult{
		ID:      "git_version",
		Status:  model.CheckStatusOK,
		Message: strings.TrimSpace(out),
	})

	return results
}

func (c *CLI) run(ctx context.Context, dir string, timeout time.Duration, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.gitBin, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("git %s: %w (%s)", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}

	c.logger.Debugf("git %s succeeded", strings.Join(args, " "))
	return string(out), nil
}
