// Package gitrepo drives the git CLI for benchmark fixture setup and
// final-state verification.
package gitrepo

import (
	"context"

	"gitbench/internal/model"
)

// Git knows the repository level git operations the benchmark runner needs.
type Git interface {
	// Clone clones a repository into dir with the given history depth.
	Clone(ctx context.Context, url, dir string, depth int) error
	// SetConfig sets a local git config key in the repository.
	SetConfig(ctx context.Context, dir, key, value string) error
	// Fetch fetches a ref from origin.
	Fetch(ctx context.Context, dir, ref string) error
	// Checkout checks out a commit or ref.
	Checkout(ctx context.Context, dir, ref string) error
	// MergeNoCommit merges a ref without committing, leaving conflicts in
	// the working tree.
	MergeNoCommit(ctx context.Context, dir, ref string) error
	// WriteTree writes the index as a tree and returns its hash.
	WriteTree(ctx context.Context, dir string) (string, error)
	// TreeHash returns the tree hash of a commit.
	TreeHash(ctx context.Context, dir, commit string) (string, error)
	// BlobHash returns the blob hash of a file at a commit.
	BlobHash(ctx context.Context, dir, commit, path string) (string, error)
	// HashObject returns the blob hash of a file in the working tree.
	HashObject(ctx context.Context, dir, path string) (string, error)
	// Check runs preflight checks for the git binary.
	Check(ctx context.Context) []model.CheckResult
}

//go:generate mockery --case underscore --output gitrepomock --outpkg gitrepomock --name Git
