package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/pitchcraft-api/internal/utils"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

func TestValidateContentType(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNopLogger())
	r := gin.New()
	r.Use(m.ValidateContentType("application/json"))
	r.Any("/pitches", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name        string
		method      string
		contentType string
		want        int
	}{
		{name: "get skips check", method: http.MethodGet, want: http.StatusOK},
		{name: "json with charset", method: http.MethodPost, contentType: "application/json; charset=utf-8", want: http.StatusOK},
		{name: "missing", method: http.MethodPost, want: http.StatusBadRequest},
		{name: "empty post", method: http.MethodPost, want: http.StatusOK},
		{name: "form", method: http.MethodPost, contentType: "application/x-www-form-urlencoded", want: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := "{}"
			if tt.name == "empty post" {
				body = ""
			}
			req := httptest.NewRequest(tt.method, "/pitches", strings.NewReader(body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestValidateRequestSize(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNopLogger())
	r := gin.New()
	r.POST("/pitches", m.ValidateRequestSize(8), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pitches", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pitches", strings.NewReader("{}")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlockSuspiciousPatterns(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNopLogger())
	r := gin.New()
	r.Use(m.BlockSuspiciousPatterns())
	r.GET("/pitches/search", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "plain search", query: "q=acme+logistics", want: http.StatusOK},
		{name: "sql union", query: "q=1+UNION+SELECT+password", want: http.StatusBadRequest},
		{name: "script tag", query: "q=%3Cscript%3Ealert(1)", want: http.StatusBadRequest},
		{name: "traversal", query: "q=../../etc/passwd", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pitches/search?"+tt.query, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNopLogger())
	r := gin.New()
	r.Use(m.SanitizeInput())
	r.GET("/pitches/search", func(c *gin.Context) {
		c.String(http.StatusOK, c.Query("q"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pitches/search?q=ac%00me%07", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "acme", w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(utils.RequestIDKey)))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	incoming := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not a uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not a uuid", w.Header().Get(RequestIDHeader))
}
