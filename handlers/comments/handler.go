package comments

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

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

// @Summary List an article's comments
// @Description Retrieve an article's comments newest-first with pagination
// @Tags comments
// @Produce json
// @Param article_id path int true "Article ID"
// @Param limit query string false "Page size, default 10, 0 or 'all' for everything"
// @Param p query int false "Page number, 1-indexed"
// @Success 200 {object} map[string][]models.Comment
// @Failure 400 {object} map[string]string "msg: Bad request / Invalid limit or page query"
// @Failure 404 {object} map[string]string "msg: No article matching requested id / End of results reached"
// @Router /articles/{article_id}/comments [get]
func (h *Handler) GetCommentsByArticleID(c *gin.Context) {
	articleID, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		c.Error(utils.BadRequest(utils.MsgBadRequest))
		return
	}

	limit, page, apiErr := utils.ParsePagination(c.Query("limit"), c.Query("p"))
	if apiErr != nil {
		c.Error(apiErr)
		return
	}

	// The existence check and the listing are both reads, so they run
	// concurrently; the check is what tells a commentless article apart
	// from a missing one.
	var comments []models.Comment
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return h.store.CheckExists(gctx, "articles", "article_id", articleID, store.MsgArticleNotFound)
	})
	g.Go(func() error {
		var listErr error
		comments, listErr = h.store.ListCommentsByArticle(gctx, articleID, limit, page)
		return listErr
	})
	if err := g.Wait(); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// @Summary Create a comment on an article
// @Description Add a comment; username must belong to an existing user
// @Tags comments
// @Accept json
// @Produce json
// @Param article_id path int true "Article ID"
// @Param comment body models.CommentCreate true "Comment information"
// @Success 201 {object} map[string]models.Comment
// @Failure 400 {object} map[string]string "msg: Missing required field(s) / Bad request"
// @Failure 404 {object} map[string]string "msg: No article matching requested id"
// @Router /articles/{article_id}/comments [post]
func (h *Handler) PostCommentByArticleID(c *gin.Context) {
	articleID, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		c.Error(utils.BadRequest(utils.MsgBadRequest))
		return
	}

	var create models.CommentCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		c.Error(utils.FromBindError(err))
		return
	}

	// Serialized before the insert: the write must not race its own guard.
	if err := h.store.CheckExists(c.Request.Context(), "articles", "article_id", articleID, store.MsgArticleNotFound); err != nil {
		c.Error(err)
		return
	}

	comment, err := h.store.InsertComment(c.Request.Context(), articleID, create)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// @Summary Delete a comment
// @Tags comments
// @Param comment_id path int true "Comment ID"
// @Success 204 "No content"
// @Failure 400 {object} map[string]string "msg: Bad request"
// @Failure 404 {object} map[string]string "msg: No comment matching requested id"
// @Router /comments/{comment_id} [delete]
func (h *Handler) DeleteCommentByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		c.Error(utils.BadRequest(utils.MsgBadRequest))
		return
	}

	if err := h.store.DeleteCommentByID(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Adjust a comment's votes
// @Description Apply the signed inc_votes increment and return the updated comment
// @Tags comments
// @Accept json
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Param body body models.VoteUpdate true "Vote increment"
// @Success 200 {object} map[string]models.Comment
// @Failure 400 {object} map[string]string "msg: Missing required field(s) / Bad request"
// @Failure 404 {object} map[string]string "msg: No comment matching requested id"
// @Router /comments/{comment_id} [patch]
func (h *Handler) PatchCommentByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("comment_id"))
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

	comment, err := h.store.AdjustCommentVotes(c.Request.Context(), id, *body.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}
