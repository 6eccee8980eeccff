package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gitbench/internal/log"
	"gitbench/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.ResultRepository.
type Repository struct {
	results map[string]model.TaskResult
	mu      sync.RWMutex
	logger  log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		results: make(map[string]model.TaskResult),
		logger:  cfg.Logger,
	}, nil
}

// CreateResult stores a new task result.
func (r *Repository) CreateResult(ctx context.Context, res model.TaskResult) error {
	if res.ID == "" {
		return fmt.Errorf("result id is required: %w", model.ErrNotValid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.results[res.ID]; ok {
		return fmt.Errorf("result %s: %w", res.ID, model.ErrAlreadyExists)
	}

	r.results[res.ID] = res
	r.logger.Debugf("Created result in repository: %s", res.ID)

	return nil
}

// GetResult retrieves a task result by ID.
func (r *Repository) GetResult(ctx context.Context, id string) (*model.TaskResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.results[id]
	if !ok {
		return nil, fmt.Errorf("result %s: %w", id, model.ErrNotFound)
	}

	// Return a copy.
	resCopy := res
	return &resCopy, nil
}

// ListResults returns all stored task results, newest first.
func (r *Repository) ListResults(ctx context.Context) ([]model.TaskResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]model.TaskResult, 0, len(r.results))
	for _, res := range r.results {
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID > results[j].ID
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return results, nil
}

// DeleteResult removes a task result by ID.
func (r *Repository) DeleteResult(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.results[id]; !ok {
		return fmt.Errorf("result %s: %w", id, model.ErrNotFound)
	}

	delete(r.results, id)
	r.logger.Debugf("Deleted result from repository: %s", id)

	return nil
}
