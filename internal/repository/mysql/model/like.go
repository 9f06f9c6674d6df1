package model

import "time"

// Like rows are unique per (comment, user) pair so concurrent double-like
// requests cannot create two records.
type Like struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;uniqueIndex:idx_comment_user"`
	UserID    string    `gorm:"column:user_id;type:varchar(50);not null;uniqueIndex:idx_comment_user"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Like) TableName() string {
	return "likes"
}
