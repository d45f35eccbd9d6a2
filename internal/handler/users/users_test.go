package users

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"peoplebook/internal/middleware"
	"peoplebook/internal/model"
	"peoplebook/internal/service"
	"peoplebook/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	updateUserProfile = store.UpdateUserProfile
	updateUserVisibility = store.UpdateUserVisibility
	updateUserPassword = store.UpdateUserPassword
	updateUserImageURL = store.UpdateUserImageURL
	listUsers = store.ListUsers
	listPublicUsers = store.ListPublicUsers
	timeNow = time.Now
}

func sampleUser() *model.User {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	return &model.User{
		ID:           7,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		IsPublic:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// newJSONCtx 建立測試 context；user 不為 nil 時模擬已通過 RequireAuth
func newJSONCtx(e *echo.Echo, method, body string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func newUploadCtx(e *echo.Echo, field, filename, content string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err == nil {
		fw.Write([]byte(content))
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/user/image", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func TestGetProfileHandler(t *testing.T) {
	e := echo.New()

	t.Run("unauthenticated", func(t *testing.T) {
		ctx, rec := newJSONCtx(e, http.MethodGet, "", nil)
		err := GetProfileHandler()(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Authentication failed")
	})

	t.Run("ok", func(t *testing.T) {
		ctx, rec := newJSONCtx(e, http.MethodGet, "", sampleUser())
		err := GetProfileHandler()(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "alice@example.com")
		require.NotContains(t, rec.Body.String(), "hash123")
	})
}
