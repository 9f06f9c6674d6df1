package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-clean-forum/domain"
)

// LikeRepository is a mock type for the domain.LikeRepository
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) CheckLiked(ctx context.Context, commentID, owner string) (bool, error) {
	ret := m.Called(ctx, commentID, owner)
	return ret.Bool(0), ret.Error(1)
}

func (m *LikeRepository) AddLike(ctx context.Context, commentID, owner string) error {
	ret := m.Called(ctx, commentID, owner)
	return ret.Error(0)
}

func (m *LikeRepository) DeleteLike(ctx context.Context, commentID, owner string) error {
	ret := m.Called(ctx, commentID, owner)
	return ret.Error(0)
}

func (m *LikeRepository) GetLikeCountsByThreadID(ctx context.Context, req domain.GetThreadDetails) ([]domain.LikeCount, error) {
	ret := m.Called(ctx, req)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.LikeCount), ret.Error(1)
}

var _ domain.LikeRepository = (*LikeRepository)(nil)

// LikeCache is a mock type for the domain.LikeCache
type LikeCache struct {
	mock.Mock
}

func (m *LikeCache) GetLikeCounts(ctx context.Context, threadID string) ([]domain.LikeCount, error) {
	ret := m.Called(ctx, threadID)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.LikeCount), ret.Error(1)
}

func (m *LikeCache) SetLikeCounts(ctx context.Context, threadID string, counts []domain.LikeCount) error {
	ret := m.Called(ctx, threadID, counts)
	return ret.Error(0)
}

func (m *LikeCache) InvalidateThread(ctx context.Context, threadID string) error {
	ret := m.Called(ctx, threadID)
	return ret.Error(0)
}

var _ domain.LikeCache = (*LikeCache)(nil)
