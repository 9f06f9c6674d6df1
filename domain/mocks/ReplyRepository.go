package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/go-clean-forum/domain"
)

// ReplyRepository is a mock type for the domain.ReplyRepository
type ReplyRepository struct {
	mock.Mock
}

func (m *ReplyRepository) VerifyReplyExist(ctx context.Context, commentID, replyID string) error {
	ret := m.Called(ctx, commentID, replyID)
	return ret.Error(0)
}

func (m *ReplyRepository) GetRepliesByThreadID(ctx context.Context, req domain.GetThreadDetails) ([]domain.ReplyRow, error) {
	ret := m.Called(ctx, req)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]domain.ReplyRow), ret.Error(1)
}

func (m *ReplyRepository) AddReply(ctx context.Context, r domain.CreateReply) (domain.CreatedReply, error) {
	ret := m.Called(ctx, r)
	return ret.Get(0).(domain.CreatedReply), ret.Error(1)
}

func (m *ReplyRepository) DeleteReplyByID(ctx context.Context, replyID, owner string) error {
	ret := m.Called(ctx, replyID, owner)
	return ret.Error(0)
}

var _ domain.ReplyRepository = (*ReplyRepository)(nil)
