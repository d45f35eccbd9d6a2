package middleware

import (
	"net/http"
	"strings"

	"peoplebook/internal/database"
	"peoplebook/internal/model"
	"peoplebook/internal/service"
	"peoplebook/internal/store"

	"github.com/labstack/echo/v4"
)

// ContextUserKey 是存放在 echo.Context 中的使用者紀錄鍵
const ContextUserKey = "user"

var (
	verifyAccessToken = service.VerifyAccessToken
	getUserByID       = store.GetUserByID
)

// resolveUser 解析 Bearer 令牌並載入對應的使用者紀錄。
// 任何失敗（缺少標頭、格式錯誤、令牌無效或過期、查無使用者）
// 一律回傳相同的 401 訊息，不洩漏失敗原因。
func resolveUser(c echo.Context, db database.DB) (*model.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication failed")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication failed")
	}
	claims, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication failed")
	}
	user, err := getUserByID(c.Request().Context(), db, claims.UserID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication failed")
	}
	return user, nil
}

// RequireAuth 驗證 Bearer 令牌並將最新的使用者紀錄放入 context
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveUser(c, db)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireAuth 之後檢查管理員身分；
// 判斷依據是資料庫中的最新紀錄，而非令牌內容
func RequireAdmin(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(db)(func(c echo.Context) error {
			user := c.Get(ContextUserKey).(*model.User)
			if !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin authorization required")
			}
			return next(c)
		})
	}
}
