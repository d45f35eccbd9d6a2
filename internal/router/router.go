// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"peoplebook/internal/cache"
	"peoplebook/internal/database"
	"peoplebook/internal/handler"
	"peoplebook/internal/handler/auth"
	"peoplebook/internal/handler/users"
	"peoplebook/internal/middleware"
	"peoplebook/internal/storage"
	"peoplebook/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, st storage.Store, pool worker.Pool) {
	// 健康檢查（需登入）
	e.GET("/ping", handler.PingHandler(db, cch), middleware.RequireAuth(db))

	// 註冊、登入、登出
	e.POST("/register", auth.RegisterHandler(db, cch))
	e.POST("/login", auth.LoginHandler(db))
	e.POST("/logout", auth.LogoutHandler())

	// 公開列表（無需認證）
	e.GET("/profiles", users.ListPublicUsersHandler(db, cch))

	// 當前使用者個人檔案
	profile := e.Group("/profile", middleware.RequireAuth(db))
	profile.GET("", users.GetProfileHandler())
	profile.PUT("", users.UpdateProfileHandler(db, cch))
	profile.PUT("/visibility", users.UpdateVisibilityHandler(db, cch))
	profile.PATCH("/password", users.UpdateMyPasswordHandler(db))

	// 個人圖片上傳
	e.POST("/user/image", users.UploadImageHandler(db, st, pool, cch), middleware.RequireAuth(db))

	// 管理員專屬列表
	e.GET("/admin/profiles", users.ListUsersHandler(db), middleware.RequireAdmin(db))
}
