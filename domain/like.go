package domain

import (
	"context"
	"time"
)

// CommentLike is representing a like record on a comment
type CommentLike struct {
	ID        string
	CommentID string
	Owner     string
	CreatedAt time.Time
}

// LikeCount is one (comment, count) pair of the per-thread like fetch.
// Comments with zero likes have no pair; readers default to 0.
type LikeCount struct {
	CommentID string
	Count     int
}

// ToggleLike is the validated payload of the like toggle.
type ToggleLike struct {
	ThreadID  string
	CommentID string
	Owner     string
}

func NewToggleLike(threadID, commentID, owner string) (ToggleLike, error) {
	if threadID == "" {
		return ToggleLike{}, errMissing("threadId")
	}
	if commentID == "" {
		return ToggleLike{}, errMissing("commentId")
	}
	if owner == "" {
		return ToggleLike{}, errMissing("owner")
	}
	return ToggleLike{ThreadID: threadID, CommentID: commentID, Owner: owner}, nil
}

// LikeRepository defines the contract for like data persistence
type LikeRepository interface {
	// CheckLiked reports whether the (commentID, owner) pair is liked.
	CheckLiked(ctx context.Context, commentID, owner string) (bool, error)

	// AddLike persists a like row for the pair.
	AddLike(ctx context.Context, commentID, owner string) error

	// DeleteLike removes the like row of the pair.
	DeleteLike(ctx context.Context, commentID, owner string) error

	// GetLikeCountsByThreadID returns one pair per comment of the thread
	// that has at least one like.
	GetLikeCountsByThreadID(ctx context.Context, req GetThreadDetails) ([]LikeCount, error)
}

// LikeCache caches per-thread like counts
type LikeCache interface {
	// GetLikeCounts returns ErrCacheMiss when the thread is not cached.
	GetLikeCounts(ctx context.Context, threadID string) ([]LikeCount, error)
	SetLikeCounts(ctx context.Context, threadID string, counts []LikeCount) error
	InvalidateThread(ctx context.Context, threadID string) error
}

type LikeUsecase interface {
	// ToggleLike likes the comment when the caller has not liked it and
	// unlikes it otherwise. Returns the resulting liked state.
	ToggleLike(ctx context.Context, threadID, commentID, owner string) (bool, error)
}
