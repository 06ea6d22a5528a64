package models

import (
	"time"
)

type Article struct {
	ArticleID int       `json:"article_id" gorm:"primaryKey;column:article_id"`
	Title     string    `json:"title" gorm:"not null"`
	Topic     string    `json:"topic" gorm:"not null"`
	Author    string    `json:"author" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"default:now()"`
	Votes     int       `json:"votes" gorm:"not null;default:0"`
	// Derived at query time from the comments join, never stored.
	CommentCount *int64    `json:"comment_count,omitempty" gorm:"column:comment_count;->;-:migration"`
	Comments     []Comment `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnDelete:CASCADE"`
}

// ArticleSummary is a listing row: everything but the body, plus the
// comment_count aggregate.
type ArticleSummary struct {
	ArticleID    int       `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int64     `json:"comment_count"`
}

type ArticleCreate struct {
	Author string `json:"author" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Body   string `json:"body" binding:"required"`
	Topic  string `json:"topic" binding:"required"`
}

func (Article) TableName() string {
	return "articles"
}
