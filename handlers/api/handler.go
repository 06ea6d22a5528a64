package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// @Summary Endpoint catalog
// @Description Machine-readable description of every available endpoint
// @Tags api
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) GetEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"GET /api": gin.H{
			"description": "Responds with a JSON object detailing the available endpoints",
		},
		"GET /api/topics": gin.H{
			"description":    "Responds with an array of topics",
			"queries":        []string{},
			"expectedStatus": 200,
			"exampleResponse": gin.H{
				"topics": []gin.H{
					{"slug": "topic", "description": "description of article contents"},
				},
			},
		},
		"POST /api/topics": gin.H{
			"description":    "Adds a new topic and responds with the created topic - requires a slug and a description",
			"queries":        []string{},
			"expectedStatus": 201,
			"exampleRequest": gin.H{"slug": "topic", "description": "description of article contents"},
			"exampleResponse": gin.H{
				"topic": gin.H{"slug": "topic", "description": "description of article contents"},
			},
		},
		"GET /api/users": gin.H{
			"description":    "Responds with an array of users",
			"queries":        []string{},
			"expectedStatus": 200,
			"exampleResponse": gin.H{
				"users": []gin.H{{"username": "username"}},
			},
		},
		"GET /api/users/:username": gin.H{
			"description":    "Responds with a user object matching the username parameter",
			"queries":        []string{},
			"expectedStatus": 200,
			"exampleResponse": gin.H{
				"user": gin.H{
					"username":   "username",
					"name":       "name",
					"avatar_url": "Link to avatar picture",
				},
			},
		},
		"GET /api/articles": gin.H{
			"description": "Responds with an array of articles and the total count of matches before pagination",
			"queries": []string{
				"sort_by (author | title | article_id | topic | votes | date | comment_count)",
				"order (asc | desc)",
				"topic (exact match required)",
				"limit (page size, default 10, 0 or 'all' disables pagination)",
				"p (page number, 1-indexed)",
			},
			"expectedStatus": 200,
			"exampleResponse": gin.H{
				"articles": []gin.H{
					{
						"article_id":    "number",
						"author":        "author",
						"title":         "title",
						"created_at":    "date",
						"topic":         "topic",
						"votes":         "number",
						"comment_count": "number of comments on this article",
					},
				},
				"total_count": "number of articles matching the filter",
			},
		},
		"POST /api/articles": gin.H{
			"description":    "Adds a new article and responds with the created article - requires an author, title, body and topic",
			"queries":        []string{},
			"expectedStatus": 201,
			"exampleRequest": gin.H{"author": "user", "title": "title", "body": "article content", "topic": "topic"},
			"exampleResponse": gin.H{
				"article": gin.H{
					"article_id":    "number",
					"author":        "author",
					"title":         "title",
					"created_at":    "date",
					"topic":         "topic",
					"votes":         0,
					"comment_count": 0,
					"body":          "article content",
				},
			},
		},
		"GET /api/articles/random": gin.H{
			"description":    "Responds with a randomly chosen article",
			"queries":        []string{},
			"expectedStatus": 200,
		},
		"GET /api/articles/:article_id": gin.H{
			"description":    "Responds with an article object matching the article_id parameter",
			"queries":        []string{},
			"expectedStatus": 200,
			"exampleResponse": gin.H{
				"article": gin.H{
					"article_id":    "number",
					"author":        "author",
					"title":         "title",
					"created_at":    "date",
					"topic":         "topic",
					"votes":         "number",
					"comment_count": "number of comments on this article",
					"body":          "The content of the article",
				},
			},
		},
		"PATCH /api/articles/:article_id": gin.H{
			"description":    "Changes the 'votes' for the article at the article_id parameter by the value (positive or negative integer) specified in the request body's inc_votes property and returns the updated article.",
			"queries":        []string{},
			"expectedStatus": 200,
			"exampleRequest": gin.H{"inc_votes": -10},
		},
		"DELETE /api/articles/:article_id": gin.H{
			"description":    "Deletes the article matching the article_id parameter along with its comments",
			"queries":        []string{},
			"expectedStatus": 204,
		},
		"GET /api/articles/:article_id/comments": gin.H{
			"description":    "Responds with an array of the comments associated with the article_id parameter, newest first",
			"queries":        []string{"limit", "p"},
			"expectedStatus": 200,
			"exampleResponse": gin.H{
				"comments": []gin.H{
					{
						"comment_id": "number",
						"author":     "author",
						"created_at": "date",
						"votes":      "number",
						"body":       "the content of the comment",
					},
				},
			},
		},
		"POST /api/articles/:article_id/comments": gin.H{
			"description":    "Adds a new comment associated with the article_id parameter and responds with the newly added comment - requires a username and a body",
			"queries":        []string{},
			"expectedStatus": 201,
			"exampleRequest": gin.H{"username": "user", "body": "comment content"},
		},
		"DELETE /api/comments/:comment_id": gin.H{
			"description":    "Deletes the comment matching the comment_id parameter",
			"queries":        []string{},
			"expectedStatus": 204,
		},
		"PATCH /api/comments/:comment_id": gin.H{
			"description":    "Changes the 'votes' for the comment at the comment_id parameter by the value (positive or negative integer) specified in the request body's inc_votes property and returns the updated comment.",
			"queries":        []string{},
			"expectedStatus": 200,
			"exampleRequest": gin.H{"inc_votes": -10},
		},
	})
}
