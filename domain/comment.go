package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"thread_id"`
	Owner     string    `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
}

// CreateComment is the validated payload for adding a comment to a thread.
type CreateComment struct {
	ThreadID string
	Owner    string
	Content  string
}

func NewCreateComment(threadID, owner, content string) (CreateComment, error) {
	if threadID == "" {
		return CreateComment{}, errMissing("threadId")
	}
	if owner == "" {
		return CreateComment{}, errMissing("owner")
	}
	if content == "" {
		return CreateComment{}, errMissing("content")
	}
	return CreateComment{ThreadID: threadID, Owner: owner, Content: content}, nil
}

// CreatedComment is returned to the caller after a comment is persisted.
type CreatedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewCreatedComment(id, content, owner string) (CreatedComment, error) {
	if id == "" {
		return CreatedComment{}, errMissing("id")
	}
	if content == "" {
		return CreatedComment{}, errMissing("content")
	}
	if owner == "" {
		return CreatedComment{}, errMissing("owner")
	}
	return CreatedComment{ID: id, Content: content, Owner: owner}, nil
}

// CommentRow is one row of the comment fetch, already joined with the
// author's username and carrying the soft-delete flag.
type CommentRow struct {
	ID        string
	Content   string
	Date      time.Time
	Username  string
	IsDeleted bool
}

// CommentDetail is the per-comment slice of a ThreadDetail. Content of
// soft-deleted comments is redacted, metadata stays visible.
type CommentDetail struct {
	ID        string
	Content   string
	Date      time.Time
	Username  string
	LikeCount int
	Replies   []ReplyDetail
}

// NewCommentDetail builds the read-time projection of one comment. The
// caller always supplies likeCount explicitly, zero included.
func NewCommentDetail(row CommentRow, likeCount int, replies []ReplyDetail) (CommentDetail, error) {
	if row.ID == "" {
		return CommentDetail{}, errMissing("id")
	}
	if row.Content == "" {
		return CommentDetail{}, errMissing("content")
	}
	if row.Username == "" {
		return CommentDetail{}, errMissing("username")
	}
	if row.Date.IsZero() {
		return CommentDetail{}, errType("date")
	}
	if replies == nil {
		return CommentDetail{}, errMissing("replies")
	}
	if likeCount < 0 {
		return CommentDetail{}, errType("likeCount")
	}
	return CommentDetail{
		ID:        row.ID,
		Content:   Redact(row.Content, row.IsDeleted, DeletedCommentPlaceholder),
		Date:      row.Date,
		Username:  row.Username,
		LikeCount: likeCount,
		Replies:   replies,
	}, nil
}

// CommentRepository defines the contract for comment data persistence
type CommentRepository interface {
	// VerifyCommentExist returns ErrNotFound if no live comment with the
	// given id exists under the thread.
	VerifyCommentExist(ctx context.Context, threadID, commentID string) error

	// GetCommentsByThreadID returns every comment of the thread, deleted
	// ones included, ordered by creation time ascending.
	GetCommentsByThreadID(ctx context.Context, req GetThreadDetails) ([]CommentRow, error)

	// AddComment persists a new comment and returns the created entity.
	AddComment(ctx context.Context, c CreateComment) (CreatedComment, error)

	// DeleteCommentByID flips the soft-delete flag. Returns ErrNotFound if
	// the row does not exist and ErrForbidden if owner is not the stored
	// owner.
	DeleteCommentByID(ctx context.Context, commentID, owner string) error
}

type CommentUsecase interface {
	AddComment(ctx context.Context, threadID, owner, content string) (CreatedComment, error)
	DeleteComment(ctx context.Context, threadID, commentID, owner string) error
}
