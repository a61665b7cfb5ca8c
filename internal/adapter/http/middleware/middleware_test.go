package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jiyajewellery/internal/adapter/http/handlers/mocks"
	"jiyajewellery/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

func serve(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", JWTAuth(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, GetClaims(c).UserID)
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueToken("other-secret", "sp-1", "Ravi", RoleSalesperson, time.Hour)
		require.NoError(t, err)
		w := serve(r, http.MethodGet, "/me", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("expired", func(t *testing.T) {
		token, err := IssueToken(testSecret, "sp-1", "Ravi", RoleSalesperson, -time.Minute)
		require.NoError(t, err)
		w := serve(r, http.MethodGet, "/me", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid", func(t *testing.T) {
		token, err := IssueToken(testSecret, "sp-1", "Ravi", RoleSalesperson, time.Hour)
		require.NoError(t, err)
		w := serve(r, http.MethodGet, "/me", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sp-1", w.Body.String())
	})
}

func TestParseToken_RequiresRole(t *testing.T) {
	token, err := IssueToken(testSecret, "sp-1", "Ravi", "", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/rates", JWTAuth(testSecret), RequireRole(RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	salesperson, _ := IssueToken(testSecret, "sp-1", "Ravi", RoleSalesperson, time.Hour)
	admin, _ := IssueToken(testSecret, "admin-1", "Meera", RoleAdmin, time.Hour)

	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodPost, "/rates", salesperson).Code)
	assert.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/rates", admin).Code)
}

func TestRequireCheckedIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(att *mocks.MockIAttendanceUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/drafts", JWTAuth(testSecret), RequireCheckedIn(att), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return r
	}

	t.Run("salesperson not checked in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		att.EXPECT().Status(gomock.Any(), "sp-1").Return(entities.Attendance{State: entities.AttendanceNotCheckedIn}, nil)

		token, _ := IssueToken(testSecret, "sp-1", "Ravi", RoleSalesperson, time.Hour)
		w := serve(newRouter(att), http.MethodPost, "/drafts", token)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("salesperson checked out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		att.EXPECT().Status(gomock.Any(), "sp-1").Return(entities.Attendance{State: entities.AttendanceCheckedOut}, nil)

		token, _ := IssueToken(testSecret, "sp-1", "Ravi", RoleSalesperson, time.Hour)
		w := serve(newRouter(att), http.MethodPost, "/drafts", token)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("status lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		att.EXPECT().Status(gomock.Any(), "sp-1").Return(entities.Attendance{}, errors.New("dynamodb down"))

		token, _ := IssueToken(testSecret, "sp-1", "Ravi", RoleSalesperson, time.Hour)
		w := serve(newRouter(att), http.MethodPost, "/drafts", token)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("salesperson checked in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)
		att.EXPECT().Status(gomock.Any(), "sp-1").Return(entities.Attendance{State: entities.AttendanceCheckedIn}, nil)

		token, _ := IssueToken(testSecret, "sp-1", "Ravi", RoleSalesperson, time.Hour)
		w := serve(newRouter(att), http.MethodPost, "/drafts", token)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("admin bypasses attendance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		att := mocks.NewMockIAttendanceUseCase(ctrl)

		token, _ := IssueToken(testSecret, "admin-1", "Meera", RoleAdmin, time.Hour)
		w := serve(newRouter(att), http.MethodPost, "/drafts", token)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		if zerolog.Ctx(c.Request.Context()).GetLevel() == zerolog.Disabled {
			t.Fatalf("expected a request logger in context")
		}
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	w = serve(r, http.MethodGet, "/", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := serve(r, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
