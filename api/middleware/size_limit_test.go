package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"summarize-api/api/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(maxBytes int64) *gin.Engine {
	r := gin.New()
	r.Use(middleware.SizeLimit(maxBytes))
	r.POST("/x", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestSizeLimitPassesSmallRequests(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("tiny"))
	w := httptest.NewRecorder()
	newEngine(1024).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSizeLimitRejectsOversizeRequests(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(strings.Repeat("a", 64)))
	w := httptest.NewRecorder()
	newEngine(10).ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSizeLimitRejectsMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("body"))
	req.Header.Set("Content-Length", "not-a-number")
	w := httptest.NewRecorder()
	newEngine(1024).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSizeLimitAllowsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.ContentLength = -1
	req.Header.Del("Content-Length")
	w := httptest.NewRecorder()
	newEngine(10).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
