package api

// CreateAdRequest deliberately has no user_id field: the owner is always the
// authenticated user, never a client-supplied value.
// swagger:model api.CreateAdRequest
type CreateAdRequest struct {
	Title       string  `json:"title" validate:"required" example:"bike"`
	Description *string `json:"description" example:"barely used"`
}
