// File: internal/handler/users/upload_image.go
package users

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"peoplebook/internal/api"
	"peoplebook/internal/cache"
	"peoplebook/internal/database"
	"peoplebook/internal/storage"
	"peoplebook/internal/worker"

	"github.com/labstack/echo/v4"
)

// UploadImageHandler 上傳個人圖片到物件儲存並更新 image_url。
// 舊圖片交由背景工作池刪除，不阻塞本次請求。
// @Summary     Upload profile image
// @Description 以 multipart 上傳圖片，物件鍵為上傳時間戳加原始檔名
// @Tags        profile
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "圖片檔案"
// @Success     200 {object} api.UploadImageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user/image [post]
func UploadImageHandler(db database.DB, st storage.Store, pool worker.Pool, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := currentUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication failed"})
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "image file is required"})
		}
		src, err := fileHeader.Open()
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}
		defer src.Close()

		key := fmt.Sprintf("%d-%s", timeNow().Unix(), filepath.Base(fileHeader.Filename))
		url, err := st.Put(c.Request().Context(), key, src, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		oldURL := user.ImageURL
		if _, err := updateUserImageURL(c.Request().Context(), db, user.ID, url); err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
		}

		// 舊圖片只佔空間，刪除失敗不影響本次上傳
		if oldURL != nil {
			if objKey := st.ObjectKey(*oldURL); objKey != "" {
				logger := c.Logger()
				pool.Submit(func() {
					if err := st.Remove(context.Background(), objKey); err != nil {
						logger.Error(err)
					}
				})
			}
		}

		cch.Del(c.Request().Context(), cache.PublicUsersKey)

		return c.JSON(http.StatusOK, api.UploadImageResponse{
			Message:  "image uploaded",
			ImageURL: url,
		})
	}
}
