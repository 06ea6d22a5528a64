// Package store holds the data accessors. Every accessor hangs off a Store
// wrapping an injected *gorm.DB so callers and tests decide which connection
// is in play.
package store

import (
	"gorm.io/gorm"
)

const (
	MsgArticleNotFound = "No article matching requested id"
	MsgCommentNotFound = "No comment matching requested id"
	MsgUserNotFound    = "No user matching requested username"
	MsgTopicNoArticles = "No articles found with that topic"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
