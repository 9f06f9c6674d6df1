package model

import (
	"time"

	"github.com/forumapi/go-clean-forum/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;index"`
	UserID    string    `gorm:"column:user_id;type:varchar(50);not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
	IsDeleted bool      `gorm:"column:is_deleted;default:false"`
}

func (Reply) TableName() string {
	return "replies"
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        m.ID,
		CommentID: m.CommentID,
		Owner:     m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		IsDeleted: m.IsDeleted,
	}
}
