// File: internal/handler/users/update_visibility.go
package users

import (
	"errors"
	"net/http"

	"peoplebook/internal/api"
	"peoplebook/internal/cache"
	"peoplebook/internal/database"
	"peoplebook/internal/store"

	"github.com/labstack/echo/v4"
)

// UpdateVisibilityHandler 切換當前使用者的公開狀態；單一欄位更新，
// 重複設定相同值不改變其他欄位
// @Summary     Set profile visibility
// @Description 更新 isPublic 旗標，決定是否出現在公開列表
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateVisibilityRequest true "公開狀態"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /profile/visibility [put]
func UpdateVisibilityHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed"})
		}

		var req api.UpdateVisibilityRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.IsPublic == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "isPublic is required"})
		}

		updated, err := updateUserVisibility(c.Request().Context(), db, user.ID, *req.IsPublic)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		cch.Del(c.Request().Context(), cache.PublicUsersKey)

		return c.JSON(http.StatusOK, api.NewUserResponse(updated))
	}
}
