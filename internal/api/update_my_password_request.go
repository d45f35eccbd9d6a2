package api

// swagger:model api.UpdateMyPasswordRequest
type UpdateMyPasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required" example:"OldSecret123!"`
	NewPassword string `json:"newPassword" validate:"required" example:"NewSecret456!"`
}
