package store

import (
	"context"
	"errors"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/IanFindlay/nc-news/models"
	"github.com/IanFindlay/nc-news/utils"
)

// Permitted sort columns, keyed by the query value. "date" is an alias for
// the creation timestamp. Anything else is a rejected query, never a silent
// fallback.
var articleSortColumns = map[string]string{
	"author":        "articles.author",
	"title":         "articles.title",
	"article_id":    "articles.article_id",
	"topic":         "articles.topic",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
	"date":          "articles.created_at",
}

// Case-sensitive: "ASC" is not a valid order value.
var articleOrders = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

type ArticleQuery struct {
	SortBy string
	Order  string
	Topic  string
	Limit  int // 0 disables the limit
	Page   int // 1-indexed
}

// ListArticles runs the filtered, sorted, paginated listing alongside an
// unpaginated count of the same filter, so total_count always reports every
// matching row. The two queries are independent reads and run concurrently.
func (s *Store) ListArticles(ctx context.Context, q ArticleQuery) ([]models.ArticleSummary, int64, error) {
	if q.SortBy == "" {
		q.SortBy = "date"
	}
	if q.Order == "" {
		q.Order = "desc"
	}

	column, ok := articleSortColumns[q.SortBy]
	if !ok {
		return nil, 0, utils.BadRequest(utils.MsgInvalidSortBy)
	}
	direction, ok := articleOrders[q.Order]
	if !ok {
		return nil, 0, utils.BadRequest(utils.MsgInvalidOrder)
	}

	articles := make([]models.ArticleSummary, 0)
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query := s.db.WithContext(gctx).Model(&models.Article{}).
			Select("articles.article_id, articles.title, articles.topic, articles.author, articles.created_at, articles.votes, COUNT(comments.comment_id) AS comment_count").
			Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
			Group("articles.article_id").
			Order(column + " " + direction)
		if q.Topic != "" {
			query = query.Where("articles.topic = ?", q.Topic)
		}
		if q.Limit > 0 {
			query = query.Limit(q.Limit).Offset((q.Page - 1) * q.Limit)
		}
		return query.Scan(&articles).Error
	})
	g.Go(func() error {
		count := s.db.WithContext(gctx).Model(&models.Article{})
		if q.Topic != "" {
			count = count.Where("topic = ?", q.Topic)
		}
		return count.Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if total == 0 && q.Topic != "" {
		return nil, 0, utils.NotFound(MsgTopicNoArticles)
	}
	// A page past the last one is an error, not an empty list.
	if len(articles) == 0 && total > 0 {
		return nil, 0, utils.NotFound(utils.MsgEndOfResults)
	}

	return articles, total, nil
}

// GetArticleByID returns the article with its comment_count aggregate. The
// join is an outer join so a commentless article comes back with a count of
// zero instead of vanishing.
func (s *Store) GetArticleByID(ctx context.Context, id int) (*models.Article, error) {
	var article models.Article
	err := s.db.WithContext(ctx).Model(&models.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", id).
		Group("articles.article_id").
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound(MsgArticleNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// InsertArticle creates the article, leaving author and topic validation to
// the foreign-key constraints. The created row is re-read so the response
// carries its comment_count (zero).
func (s *Store) InsertArticle(ctx context.Context, create models.ArticleCreate) (*models.Article, error) {
	article := models.Article{
		Author: create.Author,
		Title:  create.Title,
		Body:   create.Body,
		Topic:  create.Topic,
	}
	if err := s.db.WithContext(ctx).Create(&article).Error; err != nil {
		return nil, err
	}
	return s.GetArticleByID(ctx, article.ArticleID)
}

// DeleteArticleByID removes the article; its comments go with it via the
// ON DELETE CASCADE constraint.
func (s *Store) DeleteArticleByID(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&models.Article{}, "article_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(MsgArticleNotFound)
	}
	return nil
}

// AdjustArticleVotes applies the signed increment in a single update-and-return
// statement so concurrent adjustments on the same row never lose updates.
func (s *Store) AdjustArticleVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	var article models.Article
	result := s.db.WithContext(ctx).Model(&article).
		Clauses(clause.Returning{}).
		Where("article_id = ?", id).
		Update("votes", gorm.Expr("votes + ?", delta))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, utils.NotFound(MsgArticleNotFound)
	}
	return &article, nil
}

// RandomArticleID picks an id uniformly from the existing articles.
func (s *Store) RandomArticleID(ctx context.Context) (int, error) {
	var ids []int
	err := s.db.WithContext(ctx).Model(&models.Article{}).
		Pluck("article_id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, utils.NotFound(MsgArticleNotFound)
	}
	return ids[rand.IntN(len(ids))], nil
}
