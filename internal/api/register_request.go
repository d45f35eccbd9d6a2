package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	Name     string `json:"name" validate:"required" example:"Alice"`
	IsAdmin  bool   `json:"isAdmin" example:"false"`
	IsPublic *bool  `json:"isPublic" example:"true"`
}
