package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IanFindlay/nc-news/store"
)

type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// @Summary List users
// @Description Retrieve every user as a username-only object
// @Tags users
// @Produce json
// @Success 200 {object} map[string][]models.Username
// @Router /users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.store.ListUsernames(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// @Summary Get a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]models.User
// @Failure 404 {object} map[string]string "msg: No user matching requested username"
// @Router /users/{username} [get]
func (h *Handler) GetUserByUsername(c *gin.Context) {
	user, err := h.store.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
