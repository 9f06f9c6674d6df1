package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/forumapi/go-clean-forum/domain"
)

// likeRepository 协调层: serves like counts from cache when it can,
// rebuilds from the database otherwise. Writes go straight through; the
// toggle use case owns invalidation since only it knows the thread.
type likeRepository struct {
	db           domain.LikeRepository
	cache        domain.LikeCache
	rebuildGroup singleflight.Group
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db domain.LikeRepository, cache domain.LikeCache) *likeRepository {
	return &likeRepository{
		db:    db,
		cache: cache,
	}
}

func (r *likeRepository) GetLikeCountsByThreadID(ctx context.Context, req domain.GetThreadDetails) ([]domain.LikeCount, error) {
	counts, err := r.cache.GetLikeCounts(ctx, req.ThreadID)
	if err == nil {
		return counts, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("like cache get error: %v", err)
	}

	// singleflight collapses concurrent rebuilds of the same thread
	v, err, _ := r.rebuildGroup.Do("likes:"+req.ThreadID, func() (interface{}, error) {
		counts, err := r.db.GetLikeCountsByThreadID(ctx, req)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetLikeCounts(ctx, req.ThreadID, counts); err != nil {
			logrus.Warnf("failed to cache like counts of %s: %v", req.ThreadID, err)
		}
		return counts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.LikeCount), nil
}

func (r *likeRepository) CheckLiked(ctx context.Context, commentID, owner string) (bool, error) {
	return r.db.CheckLiked(ctx, commentID, owner)
}

func (r *likeRepository) AddLike(ctx context.Context, commentID, owner string) error {
	return r.db.AddLike(ctx, commentID, owner)
}

func (r *likeRepository) DeleteLike(ctx context.Context, commentID, owner string) error {
	return r.db.DeleteLike(ctx, commentID, owner)
}
