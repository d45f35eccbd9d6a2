package api

// swagger:model api.UpdateVisibilityRequest
type UpdateVisibilityRequest struct {
	IsPublic *bool `json:"isPublic" validate:"required" example:"false"`
}
