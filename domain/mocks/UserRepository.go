package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-clean-forum/domain"
)

// UserRepository is a mock type for the domain.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	ret := m.Called(ctx, u)
	return ret.Error(0)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	ret := m.Called(ctx, username)
	return ret.Get(0).(domain.User), ret.Error(1)
}

var _ domain.UserRepository = (*UserRepository)(nil)
