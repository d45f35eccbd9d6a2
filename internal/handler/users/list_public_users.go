// File: internal/handler/users/list_public_users.go
package users

import (
	"encoding/json"
	"net/http"

	"peoplebook/internal/api"
	"peoplebook/internal/cache"
	"peoplebook/internal/database"

	"github.com/labstack/echo/v4"
)

// ListPublicUsersHandler 公開列表，無需認證；只包含 is_public 的帳號。
// 結果以短 TTL 快取，快取不可用時直接讀資料庫。
// @Summary     List public users
// @Description 回傳所有公開使用者紀錄
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /profiles [get]
func ListPublicUsersHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if data, err := cch.Get(ctx, cache.PublicUsersKey).Result(); err == nil {
			var cached []api.UserResponse
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return c.JSON(http.StatusOK, cached)
			}
		}

		users, err := listPublicUsers(ctx, db)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		resp := api.NewUserResponses(users)
		if data, err := json.Marshal(resp); err == nil {
			cch.Set(ctx, cache.PublicUsersKey, data, cache.PublicUsersTTL)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
