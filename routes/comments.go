package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/IanFindlay/nc-news/handlers/comments"
)

func CommentsRoutes(api *gin.RouterGroup, h *comments.Handler) {
	commentsRoutes := api.Group("/comments")
	{
		commentsRoutes.DELETE("/:comment_id", h.DeleteCommentByID)
		commentsRoutes.PATCH("/:comment_id", h.PatchCommentByID)
	}
}
