package reply

import (
	"context"

	"github.com/forumapi/go-clean-forum/domain"
)

type service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(replyRepo domain.ReplyRepository, commentRepo domain.CommentRepository) *service {
	return &service{
		replyRepo:   replyRepo,
		commentRepo: commentRepo,
	}
}

func (s *service) AddReply(ctx context.Context, threadID, commentID, owner, content string) (domain.CreatedReply, error) {
	createReply, err := domain.NewCreateReply(commentID, owner, content)
	if err != nil {
		return domain.CreatedReply{}, err
	}

	// the parent comment must be a live comment of this thread
	if err := s.commentRepo.VerifyCommentExist(ctx, threadID, commentID); err != nil {
		return domain.CreatedReply{}, err
	}

	return s.replyRepo.AddReply(ctx, createReply)
}

func (s *service) DeleteReply(ctx context.Context, threadID, commentID, replyID, owner string) error {
	if err := s.commentRepo.VerifyCommentExist(ctx, threadID, commentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyExist(ctx, commentID, replyID); err != nil {
		return err
	}
	return s.replyRepo.DeleteReplyByID(ctx, replyID, owner)
}
