package like

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/forumapi/go-clean-forum/domain"
)

type service struct {
	likeRepo    domain.LikeRepository
	commentRepo domain.CommentRepository
	likeCache   domain.LikeCache
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(likeRepo domain.LikeRepository, commentRepo domain.CommentRepository, likeCache domain.LikeCache) *service {
	return &service{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		likeCache:   likeCache,
	}
}

// ToggleLike alternates the (comment, owner) pair between liked and not
// liked. A second invocation by the same user reverses the first.
func (s *service) ToggleLike(ctx context.Context, threadID, commentID, owner string) (bool, error) {
	toggle, err := domain.NewToggleLike(threadID, commentID, owner)
	if err != nil {
		return false, err
	}

	if err := s.commentRepo.VerifyCommentExist(ctx, toggle.ThreadID, toggle.CommentID); err != nil {
		return false, err
	}

	liked, err := s.likeRepo.CheckLiked(ctx, toggle.CommentID, toggle.Owner)
	if err != nil {
		return false, err
	}

	if liked {
		err = s.likeRepo.DeleteLike(ctx, toggle.CommentID, toggle.Owner)
	} else {
		err = s.likeRepo.AddLike(ctx, toggle.CommentID, toggle.Owner)
	}
	if err != nil {
		return false, err
	}

	// counts for this thread changed, drop the cached pairs
	if err := s.likeCache.InvalidateThread(ctx, toggle.ThreadID); err != nil {
		logrus.Warnf("failed to invalidate like counts of %s: %v", toggle.ThreadID, err)
	}

	return !liked, nil
}
