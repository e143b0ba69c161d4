package request

// StatusCheckCreateRequest registers a storefront health-check ping.
type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}
