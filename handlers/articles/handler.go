package articles

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IanFindlay/nc-news/models"
	"github.com/IanFindlay/nc-news/store"
	"github.com/IanFindlay/nc-news/utils"
)

type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// @Summary List articles
// @Description Retrieve articles with optional sorting, topic filter and pagination
// @Tags articles
// @Produce json
// @Param sort_by query string false "Sort column (author | title | article_id | topic | votes | comment_count | date)"
// @Param order query string false "Sort direction (asc | desc)"
// @Param topic query string false "Exact-match topic filter"
// @Param limit query string false "Page size, default 10, 0 or 'all' for everything"
// @Param p query int false "Page number, 1-indexed"
// @Success 200 {object} map[string]interface{} "articles, total_count"
// @Failure 400 {object} map[string]string "msg: Invalid sort_by/order/pagination query"
// @Failure 404 {object} map[string]string "msg: No articles found with that topic"
// @Router /articles [get]
func (h *Handler) GetArticles(c *gin.Context) {
	limit, page, apiErr := utils.ParsePagination(c.Query("limit"), c.Query("p"))
	if apiErr != nil {
		c.Error(apiErr)
		return
	}

	articles, total, err := h.store.ListArticles(c.Request.Context(), store.ArticleQuery{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Topic:  c.Query("topic"),
		Limit:  limit,
		Page:   page,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "total_count": total})
}

// @Summary Get an article
// @Description Retrieve a single article with its comment_count
// @Tags articles
// @Produce json
// @Param article_id path int true "Article ID"
// @Success 200 {object} map[string]models.Article
// @Failure 400 {object} map[string]string "msg: Bad request"
// @Failure 404 {object} map[string]string "msg: No article matching requested id"
// @Router /articles/{article_id} [get]
func (h *Handler) GetArticleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		c.Error(utils.BadRequest(utils.MsgBadRequest))
		return
	}

	article, err := h.store.GetArticleByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// @Summary Adjust an article's votes
// @Description Apply the signed inc_votes increment and return the updated article
// @Tags articles
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param body body models.VoteUpdate true "Vote increment"
// @Success 200 {object} map[string]models.Article
// @Failure 400 {object} map[string]string "msg: Missing required field(s) / Bad request"
// @Failure 404 {object} map[string]string "msg: No article matching requested id"
// @Router /articles/{article_id} [patch]
func (h *Handler) PatchArticleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		c.Error(utils.BadRequest(utils.MsgBadRequest))
		return
	}

	var body models.VoteUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(utils.FromBindError(err))
		return
	}
	if body.IncVotes == nil {
		c.Error(utils.BadRequest(utils.MsgMissingField))
		return
	}

	article, err := h.store.AdjustArticleVotes(c.Request.Context(), id, *body.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// @Summary Create an article
// @Description Create an article; author and topic must already exist
// @Tags articles
// @Accept json
// @Produce json
// @Param article body models.ArticleCreate true "Article information"
// @Success 201 {object} map[string]models.Article
// @Failure 400 {object} map[string]string "msg: Missing required field(s) / Bad request"
// @Router /articles [post]
func (h *Handler) PostArticle(c *gin.Context) {
	var create models.ArticleCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		c.Error(utils.FromBindError(err))
		return
	}

	article, err := h.store.InsertArticle(c.Request.Context(), create)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// @Summary Delete an article
// @Description Delete an article and, via cascade, its comments
// @Tags articles
// @Param article_id path int true "Article ID"
// @Success 204 "No content"
// @Failure 400 {object} map[string]string "msg: Bad request"
// @Failure 404 {object} map[string]string "msg: No article matching requested id"
// @Router /articles/{article_id} [delete]
func (h *Handler) DeleteArticleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		c.Error(utils.BadRequest(utils.MsgBadRequest))
		return
	}

	if err := h.store.DeleteArticleByID(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get a random article
// @Description Retrieve one article picked uniformly from the existing ids
// @Tags articles
// @Produce json
// @Success 200 {object} map[string]models.Article
// @Failure 404 {object} map[string]string "msg: No article matching requested id"
// @Router /articles/random [get]
func (h *Handler) GetRandomArticle(c *gin.Context) {
	id, err := h.store.RandomArticleID(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	article, err := h.store.GetArticleByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}
