package storage

import (
	"context"

	"gitbench/internal/model"
)

// ResultRepository is the interface for benchmark task result persistence.
type ResultRepository interface {
	CreateResult(ctx context.Context, r model.TaskResult) error
	GetResult(ctx context.Context, id string) (*model.TaskResult, error)
	ListResults(ctx context.Context) ([]model.TaskResult, error)
	DeleteResult(ctx context.Context, id string) error
}

//go:generate mockery --case underscore --output storagemock --outpkg storagemock --name ResultRepository
