package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/IanFindlay/nc-news/handlers/articles"
	"github.com/IanFindlay/nc-news/handlers/comments"
)

func ArticlesRoutes(api *gin.RouterGroup, h *articles.Handler, ch *comments.Handler) {
	articlesRoutes := api.Group("/articles")
	{
		articlesRoutes.GET("", h.GetArticles)
		articlesRoutes.POST("", h.PostArticle)
		articlesRoutes.GET("/random", h.GetRandomArticle)
		articlesRoutes.GET("/:article_id", h.GetArticleByID)
		articlesRoutes.PATCH("/:article_id", h.PatchArticleByID)
		articlesRoutes.DELETE("/:article_id", h.DeleteArticleByID)

		// Comment routes scoped to an article
		articlesRoutes.GET("/:article_id/comments", ch.GetCommentsByArticleID)
		articlesRoutes.POST("/:article_id/comments", ch.PostCommentByArticleID)
	}
}
