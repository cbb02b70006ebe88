package api

// swagger:model api.UpdateAdRequest
type UpdateAdRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1" example:"bike"`
	Description *string `json:"description" example:"barely used"`
}
