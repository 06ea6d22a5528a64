package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/IanFindlay/nc-news/handlers/api"
	"github.com/IanFindlay/nc-news/handlers/articles"
	"github.com/IanFindlay/nc-news/handlers/comments"
	"github.com/IanFindlay/nc-news/handlers/topics"
	"github.com/IanFindlay/nc-news/handlers/users"
	"github.com/IanFindlay/nc-news/middleware"
	"github.com/IanFindlay/nc-news/store"
	"github.com/IanFindlay/nc-news/utils"
)

func SetupRouter(s *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": utils.MsgPathNotFound})
	})

	apiGroup := r.Group("/api")
	apiGroup.GET("", api.New().GetEndpoints)

	commentHandlers := comments.NewHandler(s)
	ArticlesRoutes(apiGroup, articles.NewHandler(s), commentHandlers)
	CommentsRoutes(apiGroup, commentHandlers)
	TopicsRoutes(apiGroup, topics.NewHandler(s))
	UsersRoutes(apiGroup, users.NewHandler(s))

	return r
}
