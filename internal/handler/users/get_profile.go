// File: internal/handler/users/get_profile.go
package users

import (
	"net/http"

	"peoplebook/internal/api"

	"github.com/labstack/echo/v4"
)

// GetProfileHandler 取得當前使用者的完整檔案
// @Summary     Get own profile
// @Description 回傳通過認證的使用者完整紀錄
// @Tags        profile
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /profile [get]
func GetProfileHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
