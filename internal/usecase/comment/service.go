package comment

import (
	"context"

	"github.com/forumapi/go-clean-forum/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

func (s *service) AddComment(ctx context.Context, threadID, owner, content string) (domain.CreatedComment, error) {
	createComment, err := domain.NewCreateComment(threadID, owner, content)
	if err != nil {
		return domain.CreatedComment{}, err
	}

	if err := s.threadRepo.VerifyThreadExist(ctx, createComment.ThreadID); err != nil {
		return domain.CreatedComment{}, err
	}

	return s.commentRepo.AddComment(ctx, createComment)
}

func (s *service) DeleteComment(ctx context.Context, threadID, commentID, owner string) error {
	if err := s.commentRepo.VerifyCommentExist(ctx, threadID, commentID); err != nil {
		return err
	}
	return s.commentRepo.DeleteCommentByID(ctx, commentID, owner)
}
