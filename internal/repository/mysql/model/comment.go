package model

import (
	"time"

	"github.com/forumapi/go-clean-forum/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null;index"`
	UserID    string    `gorm:"column:user_id;type:varchar(50);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
	IsDeleted bool      `gorm:"column:is_deleted;default:false"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		Owner:     m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		IsDeleted: m.IsDeleted,
	}
}
