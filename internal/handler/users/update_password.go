// File: internal/handler/users/update_password.go
package users

import (
	"net/http"

	"peoplebook/internal/api"
	"peoplebook/internal/database"

	"github.com/labstack/echo/v4"
)

// UpdateMyPasswordHandler 驗證舊密碼並更新為新密碼
// @Summary     Update own password
// @Description 驗證舊密碼後寫入新密碼的哈希
// @Tags        profile
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateMyPasswordRequest true "新舊密碼"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /profile/password [patch]
func UpdateMyPasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed"})
		}

		var req api.UpdateMyPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := authenticateUser(c.Request().Context(), *user, req.OldPassword); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid current password"})
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		return c.NoContent(http.StatusNoContent)
	}
}
