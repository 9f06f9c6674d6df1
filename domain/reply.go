package domain

import (
	"context"
	"time"
)

// Reply domain model, a second-level reply nested under a comment.
type Reply struct {
	ID        string    `json:"id"`
	CommentID string    `json:"comment_id"`
	Owner     string    `json:"owner"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsDeleted bool      `json:"is_deleted"`
}

// CreateReply is the validated payload for adding a reply to a comment.
type CreateReply struct {
	CommentID string
	Owner     string
	Content   string
}

func NewCreateReply(commentID, owner, content string) (CreateReply, error) {
	if commentID == "" {
		return CreateReply{}, errMissing("commentId")
	}
	if owner == "" {
		return CreateReply{}, errMissing("owner")
	}
	if content == "" {
		return CreateReply{}, errMissing("content")
	}
	return CreateReply{CommentID: commentID, Owner: owner, Content: content}, nil
}

// CreatedReply is returned to the caller after a reply is persisted.
type CreatedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewCreatedReply(id, content, owner string) (CreatedReply, error) {
	if id == "" {
		return CreatedReply{}, errMissing("id")
	}
	if content == "" {
		return CreatedReply{}, errMissing("content")
	}
	if owner == "" {
		return CreatedReply{}, errMissing("owner")
	}
	return CreatedReply{ID: id, Content: content, Owner: owner}, nil
}

// ReplyRow is one row of the batched reply fetch. CommentID keys the reply
// to its parent comment during the detail merge.
type ReplyRow struct {
	ID        string
	CommentID string
	Content   string
	Date      time.Time
	Username  string
	IsDeleted bool
}

// ReplyDetail is the per-reply slice of a CommentDetail.
type ReplyDetail struct {
	ID       string
	Content  string
	Date     time.Time
	Username string
}

func NewReplyDetail(row ReplyRow) (ReplyDetail, error) {
	if row.ID == "" {
		return ReplyDetail{}, errMissing("id")
	}
	if row.Content == "" {
		return ReplyDetail{}, errMissing("content")
	}
	if row.Username == "" {
		return ReplyDetail{}, errMissing("username")
	}
	if row.Date.IsZero() {
		return ReplyDetail{}, errType("date")
	}
	return ReplyDetail{
		ID:       row.ID,
		Content:  Redact(row.Content, row.IsDeleted, DeletedReplyPlaceholder),
		Date:     row.Date,
		Username: row.Username,
	}, nil
}

// ReplyRepository defines the contract for reply data persistence
type ReplyRepository interface {
	// VerifyReplyExist returns ErrNotFound if no reply with the given id
	// exists under the comment.
	VerifyReplyExist(ctx context.Context, commentID, replyID string) error

	// GetRepliesByThreadID returns every reply across the whole thread in
	// one batch, deleted ones included, ordered by creation time ascending.
	GetRepliesByThreadID(ctx context.Context, req GetThreadDetails) ([]ReplyRow, error)

	// AddReply persists a new reply and returns the created entity.
	AddReply(ctx context.Context, r CreateReply) (CreatedReply, error)

	// DeleteReplyByID flips the soft-delete flag. Returns ErrNotFound if
	// the row does not exist and ErrForbidden if owner is not the stored
	// owner.
	DeleteReplyByID(ctx context.Context, replyID, owner string) error
}

type ReplyUsecase interface {
	AddReply(ctx context.Context, threadID, commentID, owner, content string) (CreatedReply, error)
	DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error
}
