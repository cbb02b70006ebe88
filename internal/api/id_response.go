package api

// swagger:model api.IDResponse
type IDResponse struct {
	ID int `json:"id" example:"1"`
}
