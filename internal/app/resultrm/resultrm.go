// Package resultrm implements the removal of stored task results.
package resultrm

import (
	"context"
	"fmt"

	"gitbench/internal/log"
	"gitbench/internal/storage"
)

// ServiceConfig is the configuration for the resultrm service.
type ServiceConfig struct {
	Repository storage.ResultRepository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.ResultRm"})
	return nil
}

// Service removes stored task results.
type Service struct {
	repo   storage.ResultRepository
	logger log.Logger
}

// NewService creates a new resultrm service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Remove deletes a stored result by id.
func (s *Service) Remove(ctx context.Context, id string) (err error) {
	if id == "" {
		return fmt.Errorf("result id is required")
	}

	err = s.repo.DeleteResult(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete result %q: %w", id, err)
	}

	s.logger.Infof("Result %s deleted", id)

	return nil
}
