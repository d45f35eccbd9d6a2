// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"peoplebook/internal/api"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 無狀態登出；伺服端不撤銷令牌，僅提示用戶端丟棄
// @Summary     Log out
// @Description 純告知性回應；存取令牌在到期前依然有效，用戶端應自行丟棄
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.LogoutResponse
// @Router      /logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.LogoutResponse{
			Description: "logged out; discard the bearer token on the client",
		})
	}
}
