package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/forumapi/go-clean-forum/domain"
	"github.com/forumapi/go-clean-forum/internal/repository/mysql/model"
)

type replyRepository struct {
	DB *gorm.DB
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB) *replyRepository {
	return &replyRepository{
		DB: db,
	}
}

func (r *replyRepository) VerifyReplyExist(ctx context.Context, commentID, replyID string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).
		Where("id = ? AND comment_id = ?", replyID, commentID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *replyRepository) AddReply(ctx context.Context, reply domain.CreateReply) (domain.CreatedReply, error) {
	m := &model.Reply{
		ID:        newID("reply"),
		CommentID: reply.CommentID,
		UserID:    reply.Owner,
		Content:   reply.Content,
		CreatedAt: time.Now(),
	}
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return domain.CreatedReply{}, err
	}
	return domain.NewCreatedReply(m.ID, m.Content, m.UserID)
}

type replyDetailRow struct {
	ID        string
	CommentID string
	Content   string
	Date      time.Time
	Username  string
	IsDeleted bool
}

// GetRepliesByThreadID fetches all replies of the thread in one batch; the
// detail merge filters them per comment.
func (r *replyRepository) GetRepliesByThreadID(ctx context.Context, req domain.GetThreadDetails) ([]domain.ReplyRow, error) {
	var rows []replyDetailRow
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.comment_id, replies.content, replies.created_at AS date, users.username, replies.is_deleted").
		Joins("JOIN users ON users.id = replies.user_id").
		Joins("JOIN comments ON comments.id = replies.comment_id").
		Where("comments.thread_id = ?", req.ThreadID).
		Order("replies.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReplyRow, len(rows))
	for i, row := range rows {
		res[i] = domain.ReplyRow{
			ID:        row.ID,
			CommentID: row.CommentID,
			Content:   row.Content,
			Date:      row.Date,
			Username:  row.Username,
			IsDeleted: row.IsDeleted,
		}
	}
	return res, nil
}

func (r *replyRepository) DeleteReplyByID(ctx context.Context, replyID, owner string) error {
	result := r.DB.WithContext(ctx).Model(&model.Reply{}).
		Where("id = ? AND user_id = ?", replyID, owner).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.DB.WithContext(ctx).Model(&model.Reply{}).Where("id = ?", replyID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrForbidden
	}
	return nil
}
