package users

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"peoplebook/internal/database"
	"peoplebook/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestListUsersHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			return nil, errors.New("boom")
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "", sampleUser())
		err := ListUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("returns private and public records", func(t *testing.T) {
		t.Cleanup(restore)
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			pub := *sampleUser()
			priv := *sampleUser()
			priv.ID = 8
			priv.Email = "bob@example.com"
			priv.IsPublic = false
			return []model.User{pub, priv}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "", sampleUser())
		err := ListUsersHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "alice@example.com")
		require.Contains(t, rec.Body.String(), "bob@example.com")
		require.Contains(t, rec.Body.String(), `"isPublic":false`)
	})
}
