package api

// LogoutResponse 僅為告知性回應，伺服端不會撤銷任何令牌
// swagger:model api.LogoutResponse
type LogoutResponse struct {
	Description string `json:"description" example:"logged out; discard the bearer token on the client"`
}
