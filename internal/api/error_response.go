package api

// ErrorResponse is the body of every non-2xx response.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message any    `json:"message"`
}
