// File: internal/api/user_response.go
package api

import (
	"time"

	"peoplebook/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	IsAdmin   bool      `json:"isAdmin" example:"false"`
	IsPublic  bool      `json:"isPublic" example:"true"`
	ImageURL  *string   `json:"imageUrl,omitempty" example:"http://localhost:9000/avatars/1746780000-me.png"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z07:00"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z07:00"`
}

// NewUserResponse 將資料庫模型轉為回應模型，密碼哈希永不輸出
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		IsPublic:  u.IsPublic,
		ImageURL:  u.ImageURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserResponses 批次轉換使用者清單
func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
