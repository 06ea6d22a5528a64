package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/IanFindlay/nc-news/models"
	"github.com/IanFindlay/nc-news/utils"
)

// ListCommentsByArticle returns an article's comments newest-first, with the
// same pagination semantics as the article listing. An existing article with
// no comments is an empty list on page one; a page past the end is an error.
func (s *Store) ListCommentsByArticle(ctx context.Context, articleID, limit, page int) ([]models.Comment, error) {
	query := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	comments := make([]models.Comment, 0)
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	if len(comments) == 0 && page > 1 {
		return nil, utils.NotFound(utils.MsgEndOfResults)
	}
	return comments, nil
}

// InsertComment creates a comment on the article. An unknown username
// surfaces as a foreign-key violation for the translator to map.
func (s *Store) InsertComment(ctx context.Context, articleID int, create models.CommentCreate) (*models.Comment, error) {
	comment := models.Comment{
		ArticleID: articleID,
		Author:    create.Username,
		Body:      create.Body,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *Store) DeleteCommentByID(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&models.Comment{}, "comment_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(MsgCommentNotFound)
	}
	return nil
}

// AdjustCommentVotes mirrors AdjustArticleVotes: one atomic update-and-return.
func (s *Store) AdjustCommentVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	var comment models.Comment
	result := s.db.WithContext(ctx).Model(&comment).
		Clauses(clause.Returning{}).
		Where("comment_id = ?", id).
		Update("votes", gorm.Expr("votes + ?", delta))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, utils.NotFound(MsgCommentNotFound)
	}
	return &comment, nil
}
