package response

import (
	"time"

	"github.com/forumapi/go-clean-forum/domain"
)

const DateTimeFormat = time.RFC3339

type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

type CommentDetail struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Date      string        `json:"date"`
	Username  string        `json:"username"`
	LikeCount int           `json:"like_count"`
	Replies   []ReplyDetail `json:"replies"`
}

type ReplyDetail struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// NewThreadDetailFromDomain: Domain -> Response
func NewThreadDetailFromDomain(d *domain.ThreadDetail) ThreadDetail {
	comments := make([]CommentDetail, len(d.Comments))
	for i := range d.Comments {
		comments[i] = newCommentDetailFromDomain(&d.Comments[i])
	}
	return ThreadDetail{
		ID:       d.ID,
		Title:    d.Title,
		Body:     d.Body,
		Date:     d.Date.Format(DateTimeFormat),
		Username: d.Username,
		Comments: comments,
	}
}

func newCommentDetailFromDomain(c *domain.CommentDetail) CommentDetail {
	replies := make([]ReplyDetail, len(c.Replies))
	for i, r := range c.Replies {
		replies[i] = ReplyDetail{
			ID:       r.ID,
			Content:  r.Content,
			Date:     r.Date.Format(DateTimeFormat),
			Username: r.Username,
		}
	}
	return CommentDetail{
		ID:        c.ID,
		Content:   c.Content,
		Date:      c.Date.Format(DateTimeFormat),
		Username:  c.Username,
		LikeCount: c.LikeCount,
		Replies:   replies,
	}
}
