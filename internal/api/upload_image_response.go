package api

// swagger:model api.UploadImageResponse
type UploadImageResponse struct {
	Message  string `json:"message" example:"image uploaded"`
	ImageURL string `json:"imageUrl" example:"http://localhost:9000/avatars/1746780000-me.png"`
}
