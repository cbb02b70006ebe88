package api

// swagger:model api.StatusResponse
type StatusResponse struct {
	Status string `json:"status" example:"deleted"`
}
