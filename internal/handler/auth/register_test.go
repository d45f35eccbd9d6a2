package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"peoplebook/internal/cache"
	"peoplebook/internal/database"
	"peoplebook/internal/model"
	"peoplebook/internal/service"
	"peoplebook/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "{")
		err := RegisterHandler(nil, nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request data")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"a@x.com","password":"p","name":"A"}`)
		err := RegisterHandler(nil, nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "v")
	})

	t.Run("bad email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"bad","password":"p","name":"A"}`)
		err := RegisterHandler(nil, nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid email format")
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"a@x.com","password":"p","name":"A"}`)
		err := RegisterHandler(nil, nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Internal server error")
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, store.ErrEmailTaken
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"a@x.com","password":"p","name":"A"}`)
		err := RegisterHandler(nil, nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "email already registered")
	})

	t.Run("store error stays internal", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.New("pq: relation users does not exist")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"a@x.com","password":"p","name":"A"}`)
		err := RegisterHandler(nil, nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Internal server error")
		require.NotContains(t, rec.Body.String(), "relation")
	})

	t.Run("success with defaults", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(pw string) (string, error) {
			require.Equal(t, "p", pw)
			return "hashed", nil
		}
		var created *model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			created = u
			out := *u
			out.ID = 1
			out.CreatedAt = time.Now()
			out.UpdatedAt = out.CreatedAt
			return &out, nil
		}
		var deletedKey string
		cch := &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			deletedKey = keys[0]
			return redis.NewIntResult(1, nil)
		}}

		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"A@X.com","password":"p","name":"Alice"}`)
		err := RegisterHandler(nil, cch)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "a@x.com", created.Email)
		require.Equal(t, "hashed", created.PasswordHash)
		require.False(t, created.IsAdmin)
		require.True(t, created.IsPublic)
		require.Equal(t, cache.PublicUsersKey, deletedKey)
		require.Contains(t, rec.Body.String(), `"a@x.com"`)
		require.NotContains(t, rec.Body.String(), "hashed")
	})

	t.Run("explicit private registration", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		var created *model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			created = u
			return u, nil
		}
		cch := &cache.FakeCache{DelFn: func(_ context.Context, _ ...string) *redis.IntCmd {
			return redis.NewIntResult(1, nil)
		}}

		ctx, rec := newJSONCtx(e, http.MethodPost, `{"email":"b@x.com","password":"p","name":"B","isAdmin":true,"isPublic":false}`)
		err := RegisterHandler(nil, cch)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.True(t, created.IsAdmin)
		require.False(t, created.IsPublic)
	})
}
