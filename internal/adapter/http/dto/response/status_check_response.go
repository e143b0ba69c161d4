package response

import (
	"time"

	"magazin_online/internal/domain/entities"
)

type StatusCheckResponse struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func FromStatusCheck(s entities.StatusCheck) StatusCheckResponse {
	return StatusCheckResponse{
		ID:         s.ID,
		ClientName: s.ClientName,
		Timestamp:  s.Timestamp,
	}
}

func FromStatusChecks(checks []entities.StatusCheck) []StatusCheckResponse {
	out := make([]StatusCheckResponse, 0, len(checks))
	for _, s := range checks {
		out = append(out, FromStatusCheck(s))
	}
	return out
}
