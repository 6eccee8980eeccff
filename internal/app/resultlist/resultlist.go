// Package resultlist implements the listing of stored task results.
package resultlist

import (
	"context"
	"fmt"

	"gitbench/internal/log"
	"gitbench/internal/model"
	"gitbench/internal/storage"
)

// ServiceConfig is the configuration for the resultlist service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.ResultList"})
	return nil
}

// Service lists stored task results.
type Service struct {
	repo   storage.ResultRepository
	logger log.Logger
}

// NewService creates a new resultlist service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// List returns all stored results, newest first.
func (s *Service) List(ctx context.Context) ([]model.TaskResult, error) {
	results, err := s.repo.ListResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list results: %w", err)
	}

	s.logger.Debugf("Listed %d results", len(results))

	return results, nil
}
