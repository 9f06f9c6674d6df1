package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/forumapi/go-clean-forum/domain"
	"github.com/forumapi/go-clean-forum/internal/repository/mysql/model"
)

type threadRepository struct {
	DB *gorm.DB
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB) *threadRepository {
	return &threadRepository{
		DB: db,
	}
}

func (r *threadRepository) VerifyThreadExist(ctx context.Context, threadID string) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Thread{}).Where("id = ?", threadID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// threadHeaderRow scans the thread/users join of the detail fetch.
type threadHeaderRow struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

func (r *threadRepository) GetThreadDetailsByID(ctx context.Context, req domain.GetThreadDetails) (domain.ThreadHeader, error) {
	var row threadHeaderRow
	err := r.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.created_at AS date, users.username").
		Joins("JOIN users ON users.id = threads.user_id").
		Where("threads.id = ?", req.ThreadID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ThreadHeader{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.ThreadHeader{}, err
	}

	return domain.ThreadHeader{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.Date,
		Username: row.Username,
	}, nil
}

func (r *threadRepository) AddThread(ctx context.Context, t domain.CreateThread) (domain.CreatedThread, error) {
	m := &model.Thread{
		ID:        newID("thread"),
		Title:     t.Title,
		Body:      t.Body,
		UserID:    t.Owner,
		CreatedAt: time.Now(),
	}
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return domain.CreatedThread{}, err
	}
	return domain.NewCreatedThread(m.ID, m.Title, m.UserID)
}
