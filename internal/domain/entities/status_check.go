package entities

import "time"

// StatusCheck is the trivial health-check record clients can write and list.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
