package resultlist_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitbench/internal/app/resultlist"
	"gitbench/internal/model"
	"gitbench/internal/storage/storagemock"
)

func TestServiceList(t *testing.T) {
	now := time.Now().UTC()
	results := []model.TaskResult{
		{ID: "res2", TaskID: "owner/repo-merge-2", Success: true, CreatedAt: now},
		{ID: "res1", TaskID: "owner/repo-merge-1", Success: false, CreatedAt: now.Add(-time.Hour)},
	}

	tests := map[string]struct {
		mock       func(mRepo *storagemock.MockResultRepository)
		expResults []model.TaskResult
		expErr     bool
	}{
		"Listing results should return what the repository returns": {
			mock: func(mRepo *storagemock.MockResultRepository) {
				mRepo.On("ListResults", mock.Anything).Once().Return(results, nil)
			},
			expResults: results,
		},

		"Listing results with an empty repository should return no results": {
			mock: func(mRepo *storagemock.MockResultRepository) {
				mRepo.On("ListResults", mock.Anything).Once().Return([]model.TaskResult{}, nil)
			},
			expResults: []model.TaskResult{},
		},

		"A repository failure should fail the listing": {
			mock: func(mRepo *storagemock.MockResultRepository) {
				mRepo.On("ListResults", mock.Anything).Once().Return(nil, fmt.Errorf("something exploded"))
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			mRepo := &storagemock.MockResultRepository{}
			test.mock(mRepo)

			svc, err := resultlist.NewService(resultlist.ServiceConfig{Repository: mRepo})
			require.NoError(err)

			gotResults, err := svc.List(context.Background())

			if test.expErr {
				assert.Error(err)
			} else {
				require.NoError(err)
				assert.Equal(test.expResults, gotResults)
			}

			mRepo.AssertExpectations(t)
		})
	}
}
