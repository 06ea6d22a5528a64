package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/IanFindlay/nc-news/handlers/users"
)

func UsersRoutes(api *gin.RouterGroup, h *users.Handler) {
	usersRoutes := api.Group("/users")
	{
		usersRoutes.GET("", h.GetUsers)
		usersRoutes.GET("/:username", h.GetUserByUsername)
	}
}
