package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/forumapi/go-clean-forum/domain"
	"github.com/forumapi/go-clean-forum/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{
		DB: db,
	}
}

func (r *likeRepository) CheckLiked(ctx context.Context, commentID, owner string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Like{}).
		Where("comment_id = ? AND user_id = ?", commentID, owner).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) AddLike(ctx context.Context, commentID, owner string) error {
	m := &model.Like{
		ID:        newID("like"),
		CommentID: commentID,
		UserID:    owner,
		CreatedAt: time.Now(),
	}
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *likeRepository) DeleteLike(ctx context.Context, commentID, owner string) error {
	return r.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, owner).
		Delete(&model.Like{}).Error
}

type likeCountRow struct {
	CommentID string
	LikeCount int `gorm:"column:like_count"`
}

// GetLikeCountsByThreadID returns one row per comment that has at least one
// like; comments without likes are simply absent from the result.
func (r *likeRepository) GetLikeCountsByThreadID(ctx context.Context, req domain.GetThreadDetails) ([]domain.LikeCount, error) {
	var rows []likeCountRow
	err := r.DB.WithContext(ctx).
		Table("likes").
		Select("likes.comment_id, COUNT(likes.id) AS like_count").
		Joins("JOIN comments ON comments.id = likes.comment_id").
		Where("comments.thread_id = ?", req.ThreadID).
		Group("likes.comment_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.LikeCount, len(rows))
	for i, row := range rows {
		res[i] = domain.LikeCount{CommentID: row.CommentID, Count: row.LikeCount}
	}
	return res, nil
}
