package domain

import (
	"context"
	"time"
)

// Thread is representing the Thread data struct
type Thread struct {
	ID        string    // Unique identifier, "thread-" prefixed
	Title     string    // Thread title
	Body      string    // Thread body content
	Owner     string    // ID of the user who created the thread
	CreatedAt time.Time // Creation timestamp
}

// CreateThread is the validated payload for adding a new thread.
type CreateThread struct {
	Owner string
	Title string
	Body  string
}

func NewCreateThread(owner, title, body string) (CreateThread, error) {
	if owner == "" {
		return CreateThread{}, errMissing("owner")
	}
	if title == "" {
		return CreateThread{}, errMissing("title")
	}
	if body == "" {
		return CreateThread{}, errMissing("body")
	}
	return CreateThread{Owner: owner, Title: title, Body: body}, nil
}

// CreatedThread is returned to the caller after a thread is persisted.
type CreatedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewCreatedThread(id, title, owner string) (CreatedThread, error) {
	if id == "" {
		return CreatedThread{}, errMissing("id")
	}
	if title == "" {
		return CreatedThread{}, errMissing("title")
	}
	if owner == "" {
		return CreatedThread{}, errMissing("owner")
	}
	return CreatedThread{ID: id, Title: title, Owner: owner}, nil
}

// GetThreadDetails is the validated detail request.
type GetThreadDetails struct {
	ThreadID string
}

func NewGetThreadDetails(threadID string) (GetThreadDetails, error) {
	if threadID == "" {
		return GetThreadDetails{}, errMissing("threadId")
	}
	return GetThreadDetails{ThreadID: threadID}, nil
}

// ThreadHeader is the joined thread/user row the detail view is built from.
type ThreadHeader struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// ThreadDetail is the full nested view of a single thread. It is constructed
// fresh per request and never persisted.
type ThreadDetail struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
	Comments []CommentDetail
}

func NewThreadDetail(header ThreadHeader, comments []CommentDetail) (ThreadDetail, error) {
	if header.ID == "" {
		return ThreadDetail{}, errMissing("id")
	}
	if header.Title == "" {
		return ThreadDetail{}, errMissing("title")
	}
	if header.Body == "" {
		return ThreadDetail{}, errMissing("body")
	}
	if header.Username == "" {
		return ThreadDetail{}, errMissing("username")
	}
	if header.Date.IsZero() {
		return ThreadDetail{}, errType("date")
	}
	if comments == nil {
		return ThreadDetail{}, errType("comments")
	}
	return ThreadDetail{
		ID:       header.ID,
		Title:    header.Title,
		Body:     header.Body,
		Date:     header.Date,
		Username: header.Username,
		Comments: comments,
	}, nil
}

// ThreadRepository defines the contract for thread data persistence
type ThreadRepository interface {
	// VerifyThreadExist returns ErrNotFound if no thread row matches.
	VerifyThreadExist(ctx context.Context, threadID string) error

	// GetThreadDetailsByID returns the thread header joined with its
	// author's username. Returns ErrNotFound if the thread is absent.
	GetThreadDetailsByID(ctx context.Context, req GetThreadDetails) (ThreadHeader, error)

	// AddThread persists a new thread and returns the created entity.
	AddThread(ctx context.Context, t CreateThread) (CreatedThread, error)
}

type ThreadUsecase interface {
	AddThread(ctx context.Context, owner, title, body string) (CreatedThread, error)

	// GetThreadDetails assembles the full nested view of one thread.
	// Fails with ErrNotFound before any other fetch if the thread is absent.
	GetThreadDetails(ctx context.Context, threadID string) (ThreadDetail, error)
}
