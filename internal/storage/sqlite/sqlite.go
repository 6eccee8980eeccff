package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"gitbench/internal/log"
	"gitbench/internal/model"
	"gitbench/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.ResultRepository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite repository initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// DB returns the underlying database connection.
func (r *Repository) DB() *sql.DB { return r.db }

// CreateResult stores a new task result.
func (r *Repository) CreateResult(ctx context.Context, res model.TaskResult) error {
	if res.ID == "" {
		return fmt.Errorf("result id is required: %w", model.ErrNotValid)
	}

	query := `
		INSERT INTO results (id, task_id, task_type, success, commands_attempted, duration_ms, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		res.ID,
		res.TaskID,
		res.TaskType,
		res.Success,
		res.CommandsAttempted,
		res.Duration.Milliseconds(),
		res.Error,
		res.CreatedAt.Unix(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: results.") {
			return fmt.Errorf("result already exists: %w", model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert result: %w", err)
	}

	r.logger.Debugf("Created result in repository: %s", res.ID)
	return nil
}

// GetResult retrieves a task result by ID.
func (r *Repository) GetResult(ctx context.Context, id string) (*model.TaskResult, error) {
	query := `
		SELECT id, task_id, task_type, success, commands_attempted, duration_ms, error, created_at
		FROM results
		WHERE id = ?
	`

	res, err := scanResult(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("result %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query result: %w", err)
	}

	return res, nil
}

// ListResults returns all task results, newest first.
func (r *Repository) ListResults(ctx context.Context) ([]model.TaskResult, error) {
	query := `
		SELECT id, task_id, task_type, success, commands_attempted, duration_ms, error, created_at
		FROM results
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query results: %w", err)
	}
	defer rows.Close()

	results := []model.TaskResult{}
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan result: %w", err)
		}
		results = append(results, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate results: %w", err)
	}

	return results, nil
}

// DeleteResult removes a task result by ID.
func (r *Repository) DeleteResult(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM results WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("could not delete result: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("result %s: %w", id, model.ErrNotFound)
	}

	r.logger.Debugf("Deleted result from repository: %s", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*model.TaskResult, error) {
	var (
		res        model.TaskResult
		taskType   string
		durationMS int64
		createdAt  int64
	)

	err := row.Scan(
		&res.ID,
		&res.TaskID,
		&taskType,
		&res.Success,
		&res.CommandsAttempted,
		&durationMS,
		&res.Error,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.TaskType = model.TaskType(taskType)
	res.Duration = time.Duration(durationMS) * time.Millisecond
	res.CreatedAt = time.Unix(createdAt, 0).UTC()

	return &res, nil
}
