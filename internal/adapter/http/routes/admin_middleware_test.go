package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_interfaces "villaweb/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAdminTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/admin/quotes", handler, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	t.Run("nil authorizer rejects everything", func(t *testing.T) {
		r := newAdminTestRouter(adminAuth(nil))

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/quotes", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing credential", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authorizer := mock_interfaces.NewMockIAdminAuthorizer(ctrl)
		r := newAdminTestRouter(adminAuth(authorizer))

		authorizer.EXPECT().IsAdmin(gomock.Any(), "").Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authorizer := mock_interfaces.NewMockIAdminAuthorizer(ctrl)
		r := newAdminTestRouter(adminAuth(authorizer))

		authorizer.EXPECT().IsAdmin(gomock.Any(), "wrong").Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/quotes", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("authorizer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authorizer := mock_interfaces.NewMockIAdminAuthorizer(ctrl)
		r := newAdminTestRouter(adminAuth(authorizer))

		authorizer.EXPECT().IsAdmin(gomock.Any(), "secret").Return(false, errors.New("backend"))

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/quotes", nil)
		req.Header.Set("Authorization", "Bearer secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("valid token passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		authorizer := mock_interfaces.NewMockIAdminAuthorizer(ctrl)
		r := newAdminTestRouter(adminAuth(authorizer))

		authorizer.EXPECT().IsAdmin(gomock.Any(), "secret").Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/quotes", nil)
		req.Header.Set("Authorization", "Bearer secret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
