package api

import "time"

// UserResponse never includes the password hash.
// swagger:model api.UserResponse
type UserResponse struct {
	ID           int       `json:"id" example:"1"`
	Name         string    `json:"name" example:"alice"`
	CreationTime time.Time `json:"creation_time" example:"2025-05-01T15:04:05Z"`
}
