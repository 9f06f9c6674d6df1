package model

import (
	"time"

	"github.com/forumapi/go-clean-forum/domain"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	UserID    string    `gorm:"column:user_id;type:varchar(50);not null;index"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Thread) TableName() string {
	return "threads"
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		Owner:     m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
