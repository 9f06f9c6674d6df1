package thread_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forumapi/go-clean-forum/domain"
	"github.com/forumapi/go-clean-forum/domain/mocks"
	"github.com/forumapi/go-clean-forum/internal/usecase/thread"
)

func newService() (*thread.Service, *mocks.ThreadRepository, *mocks.CommentRepository, *mocks.ReplyRepository, *mocks.LikeRepository) {
	threadRepo := new(mocks.ThreadRepository)
	commentRepo := new(mocks.CommentRepository)
	replyRepo := new(mocks.ReplyRepository)
	likeRepo := new(mocks.LikeRepository)
	svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	return svc, threadRepo, commentRepo, replyRepo, likeRepo
}

func threadHeaderFixture(id string) domain.ThreadHeader {
	return domain.ThreadHeader{
		ID:       id,
		Title:    faker.Sentence(),
		Body:     faker.Paragraph(),
		Date:     time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		Username: faker.Username(),
	}
}

func TestAddThread(t *testing.T) {
	svc, threadRepo, _, _, _ := newService()

	created := domain.CreatedThread{ID: "thread-123", Title: "a title", Owner: "user-123"}
	threadRepo.On("AddThread", mock.Anything, domain.CreateThread{
		Owner: "user-123",
		Title: "a title",
		Body:  "a body",
	}).Return(created, nil).Once()

	res, err := svc.AddThread(context.Background(), "user-123", "a title", "a body")
	require.NoError(t, err)
	assert.Equal(t, created, res)
	threadRepo.AssertExpectations(t)
}

func TestAddThreadInvalidPayload(t *testing.T) {
	svc, threadRepo, _, _, _ := newService()

	_, err := svc.AddThread(context.Background(), "user-123", "", "a body")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	threadRepo.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything)
}

func TestGetThreadDetailsNotFoundFailsFast(t *testing.T) {
	svc, threadRepo, commentRepo, replyRepo, likeRepo := newService()

	threadRepo.On("VerifyThreadExist", mock.Anything, "nonexistent").
		Return(domain.ErrNotFound).Once()

	_, err := svc.GetThreadDetails(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// nothing else gets fetched once the existence check fails
	threadRepo.AssertNotCalled(t, "GetThreadDetailsByID", mock.Anything, mock.Anything)
	commentRepo.AssertNotCalled(t, "GetCommentsByThreadID", mock.Anything, mock.Anything)
	replyRepo.AssertNotCalled(t, "GetRepliesByThreadID", mock.Anything, mock.Anything)
	likeRepo.AssertNotCalled(t, "GetLikeCountsByThreadID", mock.Anything, mock.Anything)
}

func TestGetThreadDetailsEmptyThreadID(t *testing.T) {
	svc, threadRepo, _, _, _ := newService()

	_, err := svc.GetThreadDetails(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	threadRepo.AssertNotCalled(t, "VerifyThreadExist", mock.Anything, mock.Anything)
}

func TestGetThreadDetailsNoComments(t *testing.T) {
	svc, threadRepo, commentRepo, replyRepo, likeRepo := newService()
	req := domain.GetThreadDetails{ThreadID: "thread-empty"}

	threadRepo.On("VerifyThreadExist", mock.Anything, "thread-empty").Return(nil).Once()
	threadRepo.On("GetThreadDetailsByID", mock.Anything, req).Return(threadHeaderFixture("thread-empty"), nil).Once()
	commentRepo.On("GetCommentsByThreadID", mock.Anything, req).Return([]domain.CommentRow{}, nil).Once()
	replyRepo.On("GetRepliesByThreadID", mock.Anything, req).Return([]domain.ReplyRow{}, nil).Once()
	likeRepo.On("GetLikeCountsByThreadID", mock.Anything, req).Return([]domain.LikeCount{}, nil).Once()

	res, err := svc.GetThreadDetails(context.Background(), "thread-empty")
	require.NoError(t, err)
	require.NotNil(t, res.Comments)
	assert.Empty(t, res.Comments)
}

func TestGetThreadDetailsMergesLikesAndReplies(t *testing.T) {
	svc, threadRepo, commentRepo, replyRepo, likeRepo := newService()
	req := domain.GetThreadDetails{ThreadID: "thread-123"}

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	comments := []domain.CommentRow{
		{ID: "comment-1", Content: "hello", Date: base, Username: "dicoding"},
		{ID: "comment-2", Content: "second", Date: base.Add(time.Minute), Username: "johndoe"},
	}
	replies := []domain.ReplyRow{
		{ID: "reply-1", CommentID: "comment-1", Content: "a reply", Date: base.Add(2 * time.Minute), Username: "johndoe"},
		{ID: "reply-2", CommentID: "comment-2", Content: "another", Date: base.Add(3 * time.Minute), Username: "dicoding"},
		{ID: "reply-3", CommentID: "comment-1", Content: "later", Date: base.Add(4 * time.Minute), Username: "dicoding"},
	}
	likes := []domain.LikeCount{{CommentID: "comment-1", Count: 1}}

	threadRepo.On("VerifyThreadExist", mock.Anything, "thread-123").Return(nil).Once()
	threadRepo.On("GetThreadDetailsByID", mock.Anything, req).Return(threadHeaderFixture("thread-123"), nil).Once()
	commentRepo.On("GetCommentsByThreadID", mock.Anything, req).Return(comments, nil).Once()
	replyRepo.On("GetRepliesByThreadID", mock.Anything, req).Return(replies, nil).Once()
	likeRepo.On("GetLikeCountsByThreadID", mock.Anything, req).Return(likes, nil).Once()

	res, err := svc.GetThreadDetails(context.Background(), "thread-123")
	require.NoError(t, err)
	require.Len(t, res.Comments, 2)

	first := res.Comments[0]
	assert.Equal(t, "comment-1", first.ID)
	assert.Equal(t, "hello", first.Content)
	assert.Equal(t, 1, first.LikeCount)
	require.Len(t, first.Replies, 2)
	// replies keep the reply fetch's chronological order
	assert.Equal(t, "reply-1", first.Replies[0].ID)
	assert.Equal(t, "reply-3", first.Replies[1].ID)

	second := res.Comments[1]
	assert.Equal(t, "comment-2", second.ID)
	// no like-count pair means exactly zero
	assert.Equal(t, 0, second.LikeCount)
	require.Len(t, second.Replies, 1)
	assert.Equal(t, "reply-2", second.Replies[0].ID)
}

func TestGetThreadDetailsRedactsDeletedContent(t *testing.T) {
	svc, threadRepo, commentRepo, replyRepo, likeRepo := newService()
	req := domain.GetThreadDetails{ThreadID: "thread-123"}

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	comments := []domain.CommentRow{
		{ID: "comment-1", Content: "hidden", Date: base, Username: "dicoding", IsDeleted: true},
	}
	replies := []domain.ReplyRow{
		{ID: "reply-1", CommentID: "comment-1", Content: "also hidden", Date: base.Add(time.Minute), Username: "johndoe", IsDeleted: true},
	}

	threadRepo.On("VerifyThreadExist", mock.Anything, "thread-123").Return(nil).Once()
	threadRepo.On("GetThreadDetailsByID", mock.Anything, req).Return(threadHeaderFixture("thread-123"), nil).Once()
	commentRepo.On("GetCommentsByThreadID", mock.Anything, req).Return(comments, nil).Once()
	replyRepo.On("GetRepliesByThreadID", mock.Anything, req).Return(replies, nil).Once()
	likeRepo.On("GetLikeCountsByThreadID", mock.Anything, req).Return([]domain.LikeCount{{CommentID: "comment-1", Count: 2}}, nil).Once()

	res, err := svc.GetThreadDetails(context.Background(), "thread-123")
	require.NoError(t, err)
	require.Len(t, res.Comments, 1)

	c := res.Comments[0]
	assert.Equal(t, domain.DeletedCommentPlaceholder, c.Content)
	// metadata survives redaction
	assert.Equal(t, "comment-1", c.ID)
	assert.Equal(t, "dicoding", c.Username)
	assert.Equal(t, 2, c.LikeCount)
	require.Len(t, c.Replies, 1)
	assert.Equal(t, domain.DeletedReplyPlaceholder, c.Replies[0].Content)
	assert.Equal(t, "reply-1", c.Replies[0].ID)
}

func TestGetThreadDetailsFetchFailureAbortsAll(t *testing.T) {
	svc, threadRepo, commentRepo, replyRepo, likeRepo := newService()
	req := domain.GetThreadDetails{ThreadID: "thread-123"}
	boom := errors.New("storage is down")

	threadRepo.On("VerifyThreadExist", mock.Anything, "thread-123").Return(nil).Once()
	threadRepo.On("GetThreadDetailsByID", mock.Anything, req).Return(threadHeaderFixture("thread-123"), nil).Maybe()
	commentRepo.On("GetCommentsByThreadID", mock.Anything, req).Return([]domain.CommentRow{}, nil).Maybe()
	replyRepo.On("GetRepliesByThreadID", mock.Anything, req).Return(nil, boom).Once()
	likeRepo.On("GetLikeCountsByThreadID", mock.Anything, req).Return([]domain.LikeCount{}, nil).Maybe()

	_, err := svc.GetThreadDetails(context.Background(), "thread-123")
	assert.ErrorIs(t, err, boom)
}
