package topics

import (
	"net/http"

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

// @Summary List topics
// @Tags topics
// @Produce json
// @Success 200 {object} map[string][]models.Topic
// @Router /topics [get]
func (h *Handler) GetTopics(c *gin.Context) {
	topics, err := h.store.ListTopics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// @Summary Create a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param topic body models.TopicCreate true "Topic information"
// @Success 201 {object} map[string]models.Topic
// @Failure 400 {object} map[string]string "msg: Missing required field(s) / Already exists"
// @Router /topics [post]
func (h *Handler) PostTopic(c *gin.Context) {
	var create models.TopicCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		c.Error(utils.FromBindError(err))
		return
	}

	topic, err := h.store.InsertTopic(c.Request.Context(), create)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}
