package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-clean-forum/domain"
)

// ThreadRepository is a mock type for the domain.ThreadRepository
type ThreadRepository struct {
	mock.Mock
}

func (m *ThreadRepository) VerifyThreadExist(ctx context.Context, threadID string) error {
	ret := m.Called(ctx, threadID)
	return ret.Error(0)
}

func (m *ThreadRepository) GetThreadDetailsByID(ctx context.Context, req domain.GetThreadDetails) (domain.ThreadHeader, error) {
	ret := m.Called(ctx, req)
	return ret.Get(0).(domain.ThreadHeader), ret.Error(1)
}

func (m *ThreadRepository) AddThread(ctx context.Context, t domain.CreateThread) (domain.CreatedThread, error) {
	ret := m.Called(ctx, t)
	return ret.Get(0).(domain.CreatedThread), ret.Error(1)
}

var _ domain.ThreadRepository = (*ThreadRepository)(nil)
