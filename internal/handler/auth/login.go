// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"peoplebook/internal/api"
	"peoplebook/internal/database"
	"peoplebook/internal/service"
	"peoplebook/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     Log in
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 查無帳號與密碼錯誤回傳相同訊息，不洩漏帳號是否存在
		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid credentials"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid credentials"})
		}

		token, expiresAt, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{Token: token, ExpiresAt: expiresAt})
	}
}
