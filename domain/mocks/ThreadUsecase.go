package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-clean-forum/domain"
)

// ThreadUsecase is a mock type for the domain.ThreadUsecase
type ThreadUsecase struct {
	mock.Mock
}

func (m *ThreadUsecase) AddThread(ctx context.Context, owner, title, body string) (domain.CreatedThread, error) {
	ret := m.Called(ctx, owner, title, body)
	return ret.Get(0).(domain.CreatedThread), ret.Error(1)
}

func (m *ThreadUsecase) GetThreadDetails(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	ret := m.Called(ctx, threadID)
	return ret.Get(0).(domain.ThreadDetail), ret.Error(1)
}

var _ domain.ThreadUsecase = (*ThreadUsecase)(nil)
