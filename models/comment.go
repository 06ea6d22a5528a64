package models

import (
	"time"
)

type Comment struct {
	CommentID int       `json:"comment_id" gorm:"primaryKey;column:comment_id"`
	ArticleID int       `json:"article_id" gorm:"column:article_id;not null"`
	Author    string    `json:"author" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"default:now()"`
	Votes     int       `json:"votes" gorm:"not null;default:0"`
}

type CommentCreate struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// VoteUpdate is the PATCH body shared by articles and comments. IncVotes is a
// pointer so a missing field can be told apart from a zero increment.
type VoteUpdate struct {
	IncVotes *int `json:"inc_votes"`
}

func (Comment) TableName() string {
	return "comments"
}
