package reply_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forumapi/go-clean-forum/domain"
	"github.com/forumapi/go-clean-forum/domain/mocks"
	"github.com/forumapi/go-clean-forum/internal/usecase/reply"
)

func TestAddReply(t *testing.T) {
	replyRepo := new(mocks.ReplyRepository)
	commentRepo := new(mocks.CommentRepository)
	svc := reply.NewService(replyRepo, commentRepo)

	created := domain.CreatedReply{ID: "reply-123", Content: "a reply", Owner: "user-123"}
	commentRepo.On("VerifyCommentExist", mock.Anything, "thread-123", "comment-123").Return(nil).Once()
	replyRepo.On("AddReply", mock.Anything, domain.CreateReply{
		CommentID: "comment-123",
		Owner:     "user-123",
		Content:   "a reply",
	}).Return(created, nil).Once()

	res, err := svc.AddReply(context.Background(), "thread-123", "comment-123", "user-123", "a reply")
	require.NoError(t, err)
	assert.Equal(t, created, res)
	replyRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

func TestAddReplyParentCommentNotFound(t *testing.T) {
	replyRepo := new(mocks.ReplyRepository)
	commentRepo := new(mocks.CommentRepository)
	svc := reply.NewService(replyRepo, commentRepo)

	commentRepo.On("VerifyCommentExist", mock.Anything, "thread-123", "comment-missing").
		Return(domain.ErrNotFound).Once()

	_, err := svc.AddReply(context.Background(), "thread-123", "comment-missing", "user-123", "a reply")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	replyRepo.AssertNotCalled(t, "AddReply", mock.Anything, mock.Anything)
}

func TestAddReplyInvalidPayload(t *testing.T) {
	replyRepo := new(mocks.ReplyRepository)
	commentRepo := new(mocks.CommentRepository)
	svc := reply.NewService(replyRepo, commentRepo)

	_, err := svc.AddReply(context.Background(), "thread-123", "comment-123", "", "a reply")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	commentRepo.AssertNotCalled(t, "VerifyCommentExist", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteReply(t *testing.T) {
	replyRepo := new(mocks.ReplyRepository)
	commentRepo := new(mocks.CommentRepository)
	svc := reply.NewService(replyRepo, commentRepo)

	commentRepo.On("VerifyCommentExist", mock.Anything, "thread-123", "comment-123").Return(nil).Once()
	replyRepo.On("VerifyReplyExist", mock.Anything, "comment-123", "reply-123").Return(nil).Once()
	replyRepo.On("DeleteReplyByID", mock.Anything, "reply-123", "user-123").Return(nil).Once()

	err := svc.DeleteReply(context.Background(), "thread-123", "comment-123", "reply-123", "user-123")
	require.NoError(t, err)
	replyRepo.AssertExpectations(t)
}

func TestDeleteReplyForbidden(t *testing.T) {
	replyRepo := new(mocks.ReplyRepository)
	commentRepo := new(mocks.CommentRepository)
	svc := reply.NewService(replyRepo, commentRepo)

	commentRepo.On("VerifyCommentExist", mock.Anything, "thread-123", "comment-123").Return(nil).Once()
	replyRepo.On("VerifyReplyExist", mock.Anything, "comment-123", "reply-123").Return(nil).Once()
	replyRepo.On("DeleteReplyByID", mock.Anything, "reply-123", "user-999").Return(domain.ErrForbidden).Once()

	err := svc.DeleteReply(context.Background(), "thread-123", "comment-123", "reply-123", "user-999")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
