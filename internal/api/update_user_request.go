package api

// UpdateUserRequest carries a partial update; nil fields were absent from the
// request body and keep their stored value. Unknown fields are dropped by
// binding.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1" example:"alice"`
	Password *string `json:"password" validate:"omitempty,min=1" example:"Secret123!"`
}
