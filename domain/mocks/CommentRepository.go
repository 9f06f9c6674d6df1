package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-clean-forum/domain"
)

// CommentRepository is a mock type for the domain.CommentRepository
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) VerifyCommentExist(ctx context.Context, threadID, commentID string) error {
	ret := m.Called(ctx, threadID, commentID)
	return ret.Error(0)
}

func (m *CommentRepository) GetCommentsByThreadID(ctx context.Context, req domain.GetThreadDetails) ([]domain.CommentRow, error) {
	ret := m.Called(ctx, req)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.CommentRow), ret.Error(1)
}

func (m *CommentRepository) AddComment(ctx context.Context, c domain.CreateComment) (domain.CreatedComment, error) {
	ret := m.Called(ctx, c)
	return ret.Get(0).(domain.CreatedComment), ret.Error(1)
}

func (m *CommentRepository) DeleteCommentByID(ctx context.Context, commentID, owner string) error {
	ret := m.Called(ctx, commentID, owner)
	return ret.Error(0)
}

var _ domain.CommentRepository = (*CommentRepository)(nil)
