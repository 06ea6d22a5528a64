package articles

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/IanFindlay/nc-news/middleware"
	"github.com/IanFindlay/nc-news/models"
	"github.com/IanFindlay/nc-news/store"
	"github.com/IanFindlay/nc-news/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func setupArticlesTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)

	h := NewHandler(store.New(gormDB))
	r := testutils.SetupTestRouter()
	r.Use(middleware.ErrorHandler())
	r.GET("/api/articles", h.GetArticles)
	r.POST("/api/articles", h.PostArticle)
	r.GET("/api/articles/random", h.GetRandomArticle)
	r.GET("/api/articles/:article_id", h.GetArticleByID)
	r.PATCH("/api/articles/:article_id", h.PatchArticleByID)
	r.DELETE("/api/articles/:article_id", h.DeleteArticleByID)

	return r, mock, cleanup
}

func articleRows(mock sqlmock.Sqlmock, withCommentCount bool) *sqlmock.Rows {
	columns := []string{"article_id", "title", "topic", "author", "body", "created_at", "votes"}
	if withCommentCount {
		columns = append(columns, "comment_count")
	}
	rows := mock.NewRows(columns)
	if withCommentCount {
		rows.AddRow(1, "Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC), 100, 11)
	} else {
		rows.AddRow(1, "Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC), 100)
	}
	return rows
}

func TestGetArticleByID_Success(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT articles\..*COUNT\(comments\.comment_id\) AS comment_count FROM "articles" LEFT JOIN comments`).
		WithArgs(1, 1).
		WillReturnRows(articleRows(mock, true))

	req, _ := http.NewRequest(http.MethodGet, "/api/articles/1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]models.Article
	json.Unmarshal(resp.Body.Bytes(), &response)

	article := response["article"]
	assert.Equal(t, 1, article.ArticleID)
	assert.Equal(t, 100, article.Votes)
	assert.Equal(t, "butter_bridge", article.Author)
	if assert.NotNil(t, article.CommentCount) {
		assert.Equal(t, int64(11), *article.CommentCount)
	}
}

func TestGetArticleByID_NotFound(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	emptyRows := mock.NewRows([]string{"article_id", "title", "topic", "author", "body", "created_at", "votes", "comment_count"})
	mock.ExpectQuery(`SELECT articles\..*FROM "articles" LEFT JOIN comments`).
		WithArgs(9999, 1).
		WillReturnRows(emptyRows)

	req, _ := http.NewRequest(http.MethodGet, "/api/articles/9999", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "No article matching requested id", respBody["msg"])
}

func TestGetArticleByID_InvalidID(t *testing.T) {
	r, _, cleanup := setupArticlesTest(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodGet, "/api/articles/not-an-int", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Bad request", respBody["msg"])
}

type articlesResponse struct {
	Articles   []models.ArticleSummary `json:"articles"`
	TotalCount int64                   `json:"total_count"`
}

func summaryRows(mock sqlmock.Sqlmock) *sqlmock.Rows {
	now := time.Now()
	return mock.NewRows([]string{"article_id", "title", "topic", "author", "created_at", "votes", "comment_count"}).
		AddRow(3, "Eight pug gifs that remind me of mitch", "mitch", "icellusedkars", now, 0, 2).
		AddRow(1, "Living in the shadow of a great man", "mitch", "butter_bridge", now.Add(-time.Hour), 100, 11)
}

func TestGetArticles_Defaults(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	// The page and count queries run concurrently, so arrival order is not
	// deterministic.
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT articles\.article_id, articles\.title, articles\.topic, articles\.author, articles\.created_at, articles\.votes, COUNT\(comments\.comment_id\) AS comment_count FROM "articles" LEFT JOIN comments`).
		WillReturnRows(summaryRows(mock))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(2))

	req, _ := http.NewRequest(http.MethodGet, "/api/articles", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response articlesResponse
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Len(t, response.Articles, 2)
	assert.Equal(t, int64(2), response.TotalCount)
	assert.Equal(t, int64(2), response.Articles[0].CommentCount)
}

func TestGetArticles_TopicFilter(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT articles\.article_id.*FROM "articles" LEFT JOIN comments.*articles\.topic = \$1`).
		WithArgs("mitch", 10).
		WillReturnRows(summaryRows(mock))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles" WHERE topic = \$1`).
		WithArgs("mitch").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(2))

	req, _ := http.NewRequest(http.MethodGet, "/api/articles?topic=mitch", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response articlesResponse
	json.Unmarshal(resp.Body.Bytes(), &response)
	for _, article := range response.Articles {
		assert.Equal(t, "mitch", article.Topic)
	}
}

func TestGetArticles_TopicNoMatch(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT articles\.article_id.*FROM "articles" LEFT JOIN comments`).
		WillReturnRows(mock.NewRows([]string{"article_id", "title", "topic", "author", "created_at", "votes", "comment_count"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles" WHERE topic = \$1`).
		WithArgs("dogs").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))

	req, _ := http.NewRequest(http.MethodGet, "/api/articles?topic=dogs", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "No articles found with that topic", respBody["msg"])
}

func TestGetArticles_PageBeyondEnd(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT articles\.article_id.*FROM "articles" LEFT JOIN comments`).
		WillReturnRows(mock.NewRows([]string{"article_id", "title", "topic", "author", "created_at", "votes", "comment_count"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(12))

	req, _ := http.NewRequest(http.MethodGet, "/api/articles?p=99", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "End of results reached", respBody["msg"])
}

func TestGetArticles_InvalidSortBy(t *testing.T) {
	r, _, cleanup := setupArticlesTest(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodGet, "/api/articles?sort_by=height", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid sort_by query", respBody["msg"])
}

func TestGetArticles_InvalidOrder(t *testing.T) {
	r, _, cleanup := setupArticlesTest(t)
	defer cleanup()

	// Order values are case-sensitive.
	req, _ := http.NewRequest(http.MethodGet, "/api/articles?order=ASC", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid order query", respBody["msg"])
}

func TestGetArticles_InvalidLimit(t *testing.T) {
	r, _, cleanup := setupArticlesTest(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodGet, "/api/articles?limit=ten", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid limit or page query", respBody["msg"])
}

func TestPatchArticleByID_Success(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	updated := mock.NewRows([]string{"article_id", "title", "topic", "author", "body", "created_at", "votes"}).
		AddRow(1, "Living in the shadow of a great man", "mitch", "butter_bridge", "I find this existence challenging", time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC), 75)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE "articles" SET "votes"=votes \+ \$1 WHERE article_id = \$2 RETURNING`).
		WithArgs(-25, 1).
		WillReturnRows(updated)
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]int{"inc_votes": -25})
	req, _ := http.NewRequest(http.MethodPatch, "/api/articles/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]models.Article
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, 75, response["article"].Votes)
}

func TestPatchArticleByID_NotFound(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE "articles" SET "votes"=votes \+ \$1 WHERE article_id = \$2 RETURNING`).
		WithArgs(1, 9999).
		WillReturnRows(mock.NewRows([]string{"article_id", "title", "topic", "author", "body", "created_at", "votes"}))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]int{"inc_votes": 1})
	req, _ := http.NewRequest(http.MethodPatch, "/api/articles/9999", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "No article matching requested id", respBody["msg"])
}

func TestPatchArticleByID_MissingIncVotes(t *testing.T) {
	r, _, cleanup := setupArticlesTest(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodPatch, "/api/articles/1", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Missing required field(s)", respBody["msg"])
}

func TestPatchArticleByID_NonIntegerIncVotes(t *testing.T) {
	r, _, cleanup := setupArticlesTest(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodPatch, "/api/articles/1", bytes.NewBufferString(`{"inc_votes": "cat"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Bad request", respBody["msg"])
}

func TestPostArticle_Success(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "articles"`).
		WillReturnRows(mock.NewRows([]string{"article_id", "votes"}).AddRow(13, 0))
	mock.ExpectCommit()

	created := mock.NewRows([]string{"article_id", "title", "topic", "author", "body", "created_at", "votes", "comment_count"}).
		AddRow(13, "New article", "mitch", "butter_bridge", "Some content", time.Now(), 0, 0)
	mock.ExpectQuery(`SELECT articles\..*FROM "articles" LEFT JOIN comments`).
		WithArgs(13, 1).
		WillReturnRows(created)

	body, _ := json.Marshal(map[string]string{
		"author": "butter_bridge",
		"title":  "New article",
		"body":   "Some content",
		"topic":  "mitch",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/articles", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response map[string]models.Article
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, 13, response["article"].ArticleID)
	assert.Equal(t, "New article", response["article"].Title)
}

func TestPostArticle_MissingField(t *testing.T) {
	r, _, cleanup := setupArticlesTest(t)
	defer cleanup()

	body, _ := json.Marshal(map[string]string{
		"author": "butter_bridge",
		"topic":  "mitch",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/articles", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Missing required field(s)", respBody["msg"])
}

func TestPostArticle_UnknownTopic(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "articles"`).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	body, _ := json.Marshal(map[string]string{
		"author": "butter_bridge",
		"title":  "New article",
		"body":   "Some content",
		"topic":  "not-a-topic",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/articles", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Bad request", respBody["msg"])
}

func TestDeleteArticleByID_Success(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "articles" WHERE article_id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req, _ := http.NewRequest(http.MethodDelete, "/api/articles/1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.Bytes())
}

func TestDeleteArticleByID_NotFound(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "articles" WHERE article_id = \$1`).
		WithArgs(9999).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	req, _ := http.NewRequest(http.MethodDelete, "/api/articles/9999", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "No article matching requested id", respBody["msg"])
}

func TestGetRandomArticle_Success(t *testing.T) {
	r, mock, cleanup := setupArticlesTest(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT "article_id" FROM "articles"`).
		WillReturnRows(mock.NewRows([]string{"article_id"}).AddRow(1))
	mock.ExpectQuery(`SELECT articles\..*FROM "articles" LEFT JOIN comments`).
		WithArgs(1, 1).
		WillReturnRows(articleRows(mock, true))

	req, _ := http.NewRequest(http.MethodGet, "/api/articles/random", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]models.Article
	json.Unmarshal(resp.Body.Bytes(), &response)
	assert.Equal(t, 1, response["article"].ArticleID)
}
