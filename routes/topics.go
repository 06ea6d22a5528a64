package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/IanFindlay/nc-news/handlers/topics"
)

func TopicsRoutes(api *gin.RouterGroup, h *topics.Handler) {
	topicsRoutes := api.Group("/topics")
	{
		topicsRoutes.GET("", h.GetTopics)
		topicsRoutes.POST("", h.PostTopic)
	}
}
