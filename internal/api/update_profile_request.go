// File: internal/api/update_profile_request.go
package api

// UpdateProfileRequest 僅允許更新顯示名稱與 Email，其餘欄位一律拒絕
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1" example:"Alice"`
	Email *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
}
