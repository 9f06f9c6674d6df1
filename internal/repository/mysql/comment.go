package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/forumapi/go-clean-forum/domain"
	"github.com/forumapi/go-clean-forum/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (r *commentRepository) VerifyCommentExist(ctx context.Context, threadID, commentID string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ? AND thread_id = ? AND is_deleted = ?", commentID, threadID, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *commentRepository) AddComment(ctx context.Context, c domain.CreateComment) (domain.CreatedComment, error) {
	m := &model.Comment{
		ID:        newID("comment"),
		ThreadID:  c.ThreadID,
		UserID:    c.Owner,
		Content:   c.Content,
		CreatedAt: time.Now(),
	}
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return domain.CreatedComment{}, err
	}
	return domain.NewCreatedComment(m.ID, m.Content, m.UserID)
}

type commentDetailRow struct {
	ID        string
	Content   string
	Date      time.Time
	Username  string
	IsDeleted bool
}

// GetCommentsByThreadID returns deleted comments too; redaction happens at
// read time in the detail entities, never here.
func (r *commentRepository) GetCommentsByThreadID(ctx context.Context, req domain.GetThreadDetails) ([]domain.CommentRow, error) {
	var rows []commentDetailRow
	err := r.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.content, comments.created_at AS date, users.username, comments.is_deleted").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.thread_id = ?", req.ThreadID).
		Order("comments.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.CommentRow, len(rows))
	for i, row := range rows {
		res[i] = domain.CommentRow{
			ID:        row.ID,
			Content:   row.Content,
			Date:      row.Date,
			Username:  row.Username,
			IsDeleted: row.IsDeleted,
		}
	}
	return res, nil
}

func (r *commentRepository) DeleteCommentByID(ctx context.Context, commentID, owner string) error {
	result := r.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ? AND user_id = ?", commentID, owner).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", commentID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrForbidden
	}
	return nil
}
