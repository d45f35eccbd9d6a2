// File: internal/handler/users/update_profile.go
package users

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"peoplebook/internal/api"
	"peoplebook/internal/cache"
	"peoplebook/internal/database"
	"peoplebook/internal/store"

	"github.com/labstack/echo/v4"
)

// UpdateProfileHandler 更新當前使用者檔案；只接受允許清單內的欄位
// (name、email)，其餘欄位即使出現在請求中也會被忽略
// @Summary     Update own profile
// @Description 更新姓名與 Email，未提供的欄位維持原值
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateProfileRequest true "更新資料"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /profile [put]
func UpdateProfileHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed"})
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if req.Name == nil && req.Email == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "no updatable fields provided"})
		}

		name := user.Name
		if req.Name != nil {
			name = *req.Name
		}
		email := user.Email
		if req.Email != nil {
			email = strings.ToLower(*req.Email)
			if _, err := mail.ParseAddress(email); err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
			}
		}

		updated, err := updateUserProfile(c.Request().Context(), db, user.ID, name, email)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrEmailTaken):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already registered"})
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed"})
			default:
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
			}
		}

		// 名稱與 Email 會出現在公開列表
		cch.Del(c.Request().Context(), cache.PublicUsersKey)

		return c.JSON(http.StatusOK, api.NewUserResponse(updated))
	}
}
