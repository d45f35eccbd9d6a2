// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"peoplebook/internal/api"
	"peoplebook/internal/database"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 管理員專用：列出所有使用者，包含非公開帳號
// @Summary     List all users (admin)
// @Description 回傳全部使用者紀錄，不論公開狀態
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/profiles [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(users))
	}
}
