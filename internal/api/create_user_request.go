package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
