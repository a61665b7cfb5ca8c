package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"jiyajewellery/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asUser(role, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &middleware.Claims{UserID: userID, Role: role})
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type validated struct {
	Name string `json:"name" validate:"required"`
}

func TestBindAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var req validated
		if !bindAndValidate(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := doJSON(r, http.MethodPost, "/", "{")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"Name":"required"`)

	w = doJSON(r, http.MethodPost, "/", `{"name":"ok"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCurrentUser_MissingClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		if _, ok := currentUser(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	w := doJSON(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
