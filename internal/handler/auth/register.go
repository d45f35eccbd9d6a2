// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"peoplebook/internal/api"
	"peoplebook/internal/cache"
	"peoplebook/internal/database"
	"peoplebook/internal/model"
	"peoplebook/internal/service"
	"peoplebook/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
)

// RegisterHandler 建立新帳號
// @Summary     Register a new account
// @Description 接收註冊資料並建立新帳號 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		// 未指定時預設公開
		isPublic := true
		if req.IsPublic != nil {
			isPublic = *req.IsPublic
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			IsAdmin:      req.IsAdmin,
			IsPublic:     isPublic,
		})
		if err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already registered"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		// 新帳號會出現在公開列表，讓快取失效；失敗時最多供應一輪舊列表
		cch.Del(c.Request().Context(), cache.PublicUsersKey)

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}
