package models

// Booking is a submitted reservation. Timestamp is RFC3339 UTC, set by the
// submitter rather than the server.
type Booking struct {
	Email       string `json:"email"`
	InstanceIDs []int  `json:"instance_ids"`
	Timestamp   string `json:"timestamp"`
}
