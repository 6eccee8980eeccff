package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitbench/internal/model"
	"gitbench/internal/storage/sqlite"
)

func testRepository(t *testing.T) *sqlite.Repository {
	t.Helper()

	repo, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{
		DBPath: filepath.Join(t.TempDir(), "gitbench.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func testResult(id string, createdAt time.Time) model.TaskResult {
	return model.TaskResult{
		ID:                id,
		TaskID:            "owner/repo-merge-1",
		TaskType:          model.TaskTypeMerge,
		Success:           true,
		CommandsAttempted: 3,
		Duration:          1500 * time.Millisecond,
		Error:             "",
		CreatedAt:         createdAt,
	}
}

func TestRepositoryCreateAndGetResult(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	repo := testRepository(t)

	// Second precision, the column stores unix seconds.
	now := time.Unix(time.Now().Unix(), 0).UTC()
	res := testResult("result-1", now)

	require.NoError(repo.CreateResult(ctx, res))

	got, err := repo.GetResult(ctx, "result-1")
	require.NoError(err)
	assert.Equal(res, *got)
}

func TestRepositoryCreateDuplicatedResult(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	repo := testRepository(t)
	res := testResult("result-1", time.Now().UTC())

	require.NoError(repo.CreateResult(ctx, res))
	err := repo.CreateResult(ctx, res)

	assert.ErrorIs(err, model.ErrAlreadyExists)
}

func TestRepositoryGetMissingResult(t *testing.T) {
	assert := assert.New(t)

	_, err := testRepository(t).GetResult(context.Background(), "missing")

	assert.ErrorIs(err, model.ErrNotFound)
}

func TestRepositoryListResults(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	repo := testRepository(t)

	now := time.Unix(time.Now().Unix(), 0).UTC()
	oldest := testResult("result-old", now.Add(-time.Hour))
	newest := testResult("result-new", now)
	require.NoError(repo.CreateResult(ctx, oldest))
	require.NoError(repo.CreateResult(ctx, newest))

	got, err := repo.ListResults(ctx)

	require.NoError(err)
	assert.Equal([]model.TaskResult{newest, oldest}, got)
}

func TestRepositoryListResultsEmpty(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	got, err := testRepository(t).ListResults(context.Background())

	require.NoError(err)
	assert.Empty(got)
}

func TestRepositoryDeleteResult(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	repo := testRepository(t)
	require.NoError(repo.CreateResult(ctx, testResult("result-1", time.Now().UTC())))

	require.NoError(repo.DeleteResult(ctx, "result-1"))

	_, err := repo.GetResult(ctx, "result-1")
	assert.ErrorIs(err, model.ErrNotFound)

	err = repo.DeleteResult(ctx, "result-1")
	assert.ErrorIs(err, model.ErrNotFound)
}

func TestRepositoryPersistsFailureDetails(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	repo := testRepository(t)

	res := model.TaskResult{
		ID:                "result-failed",
		TaskID:            "owner/repo-chain-2",
		TaskType:          model.TaskTypeFileChain,
		Success:           false,
		CommandsAttempted: 2,
		Duration:          200 * time.Millisecond,
		Error:             "command failed: git rebase",
		CreatedAt:         time.Unix(time.Now().Unix(), 0).UTC(),
	}
	require.NoError(repo.CreateResult(ctx, res))

	got, err := repo.GetResult(ctx, "result-failed")
	require.NoError(err)
	assert.Equal(res, *got)
}
