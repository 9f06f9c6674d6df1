package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forumapi/go-clean-forum/domain"
	"github.com/forumapi/go-clean-forum/domain/mocks"
	"github.com/forumapi/go-clean-forum/internal/repository"
)

func TestGetLikeCountsCacheHit(t *testing.T) {
	db := new(mocks.LikeRepository)
	cache := new(mocks.LikeCache)
	repo := repository.NewLikeRepository(db, cache)

	req := domain.GetThreadDetails{ThreadID: "thread-1"}
	counts := []domain.LikeCount{{CommentID: "comment-1", Count: 2}}
	cache.On("GetLikeCounts", mock.Anything, "thread-1").Return(counts, nil).Once()

	res, err := repo.GetLikeCountsByThreadID(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, counts, res)
	db.AssertNotCalled(t, "GetLikeCountsByThreadID", mock.Anything, mock.Anything)
}

func TestGetLikeCountsCacheMissRebuilds(t *testing.T) {
	db := new(mocks.LikeRepository)
	cache := new(mocks.LikeCache)
	repo := repository.NewLikeRepository(db, cache)

	req := domain.GetThreadDetails{ThreadID: "thread-1"}
	counts := []domain.LikeCount{{CommentID: "comment-1", Count: 2}}
	cache.On("GetLikeCounts", mock.Anything, "thread-1").Return(nil, domain.ErrCacheMiss).Once()
	db.On("GetLikeCountsByThreadID", mock.Anything, req).Return(counts, nil).Once()
	cache.On("SetLikeCounts", mock.Anything, "thread-1", counts).Return(nil).Once()

	res, err := repo.GetLikeCountsByThreadID(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, counts, res)
	db.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestGetLikeCountsCacheErrorFallsBackToDB(t *testing.T) {
	db := new(mocks.LikeRepository)
	cache := new(mocks.LikeCache)
	repo := repository.NewLikeRepository(db, cache)

	req := domain.GetThreadDetails{ThreadID: "thread-1"}
	counts := []domain.LikeCount{}
	cache.On("GetLikeCounts", mock.Anything, "thread-1").Return(nil, assert.AnError).Once()
	db.On("GetLikeCountsByThreadID", mock.Anything, req).Return(counts, nil).Once()
	cache.On("SetLikeCounts", mock.Anything, "thread-1", counts).Return(nil).Once()

	res, err := repo.GetLikeCountsByThreadID(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, counts, res)
}

func TestGetLikeCountsDBFailurePropagates(t *testing.T) {
	db := new(mocks.LikeRepository)
	cache := new(mocks.LikeCache)
	repo := repository.NewLikeRepository(db, cache)

	req := domain.GetThreadDetails{ThreadID: "thread-1"}
	cache.On("GetLikeCounts", mock.Anything, "thread-1").Return(nil, domain.ErrCacheMiss).Once()
	db.On("GetLikeCountsByThreadID", mock.Anything, req).Return(nil, assert.AnError).Once()

	_, err := repo.GetLikeCountsByThreadID(context.Background(), req)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWritesPassThrough(t *testing.T) {
	db := new(mocks.LikeRepository)
	cache := new(mocks.LikeCache)
	repo := repository.NewLikeRepository(db, cache)

	db.On("CheckLiked", mock.Anything, "comment-1", "user-1").Return(true, nil).Once()
	db.On("AddLike", mock.Anything, "comment-1", "user-1").Return(nil).Once()
	db.On("DeleteLike", mock.Anything, "comment-1", "user-1").Return(nil).Once()

	liked, err := repo.CheckLiked(context.Background(), "comment-1", "user-1")
	require.NoError(t, err)
	assert.True(t, liked)
	require.NoError(t, repo.AddLike(context.Background(), "comment-1", "user-1"))
	require.NoError(t, repo.DeleteLike(context.Background(), "comment-1", "user-1"))
	db.AssertExpectations(t)
}
