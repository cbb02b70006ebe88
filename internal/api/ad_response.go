package api

import "time"

// swagger:model api.AdResponse
type AdResponse struct {
	ID           int       `json:"id" example:"1"`
	Title        string    `json:"title" example:"bike"`
	Description  *string   `json:"description" example:"barely used"`
	CreationTime time.Time `json:"creation_time" example:"2025-05-01T15:04:05Z"`
	UserID       int       `json:"user_id" example:"1"`
}

// AdUpdatedResponse is the PATCH /ads response; name carries the title.
// swagger:model api.AdUpdatedResponse
type AdUpdatedResponse struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"bike"`
}
