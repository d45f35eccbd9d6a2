// Package users 實作所有需要登入身分的個人檔案操作與列表查詢。
// 處理函式一律從 context 取出 RequireAuth 載入的使用者紀錄，
// 不再信任令牌內的任何屬性。
package users

import (
	"time"

	"peoplebook/internal/middleware"
	"peoplebook/internal/model"
	"peoplebook/internal/service"
	"peoplebook/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword         = service.HashPassword
	authenticateUser     = service.AuthenticateUser
	updateUserProfile    = store.UpdateUserProfile
	updateUserVisibility = store.UpdateUserVisibility
	updateUserPassword   = store.UpdateUserPassword
	updateUserImageURL   = store.UpdateUserImageURL
	listUsers            = store.ListUsers
	listPublicUsers      = store.ListPublicUsers
	timeNow              = time.Now
)

// currentUser 取出 RequireAuth 放入 context 的使用者紀錄
func currentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(middleware.ContextUserKey).(*model.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
