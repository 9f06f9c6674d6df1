package thread

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/forumapi/go-clean-forum/domain"
)

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.LikeRepository
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, l domain.LikeRepository) *Service {
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
	}
}

func (s *Service) AddThread(ctx context.Context, owner, title, body string) (domain.CreatedThread, error) {
	newThread, err := domain.NewCreateThread(owner, title, body)
	if err != nil {
		return domain.CreatedThread{}, err
	}
	return s.threadRepo.AddThread(ctx, newThread)
}

// GetThreadDetails assembles the nested detail view of one thread. The four
// fetches after the existence check are independent, so they run
// concurrently and join before the merge; any failure aborts the whole
// request.
func (s *Service) GetThreadDetails(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	req, err := domain.NewGetThreadDetails(threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	if err := s.threadRepo.VerifyThreadExist(ctx, req.ThreadID); err != nil {
		return domain.ThreadDetail{}, err
	}

	var (
		header   domain.ThreadHeader
		comments []domain.CommentRow
		replies  []domain.ReplyRow
		likes    []domain.LikeCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		header, err = s.threadRepo.GetThreadDetailsByID(gctx, req)
		return
	})
	g.Go(func() (err error) {
		comments, err = s.commentRepo.GetCommentsByThreadID(gctx, req)
		return
	})
	g.Go(func() (err error) {
		replies, err = s.replyRepo.GetRepliesByThreadID(gctx, req)
		return
	})
	g.Go(func() (err error) {
		likes, err = s.likeRepo.GetLikeCountsByThreadID(gctx, req)
		return
	})
	if err := g.Wait(); err != nil {
		return domain.ThreadDetail{}, err
	}

	commentDetails, err := mergeCommentsAndReplies(comments, replies, likes)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	return domain.NewThreadDetail(header, commentDetails)
}

// mergeCommentsAndReplies keeps the comment fetch's order, nests each
// comment's replies in reply-fetch order and resolves like counts with 0
// for comments that have no pair.
func mergeCommentsAndReplies(comments []domain.CommentRow, replies []domain.ReplyRow, likes []domain.LikeCount) ([]domain.CommentDetail, error) {
	counts := make(map[string]int, len(likes))
	for _, lc := range likes {
		counts[lc.CommentID] = lc.Count
	}

	details := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		replyDetails := make([]domain.ReplyDetail, 0)
		for _, r := range replies {
			if r.CommentID != c.ID {
				continue
			}
			rd, err := domain.NewReplyDetail(r)
			if err != nil {
				return nil, err
			}
			replyDetails = append(replyDetails, rd)
		}

		cd, err := domain.NewCommentDetail(c, counts[c.ID], replyDetails)
		if err != nil {
			return nil, err
		}
		details = append(details, cd)
	}
	return details, nil
}
