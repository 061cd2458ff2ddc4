package domain

import "time"

// Event notifies consoles that a collection changed and their cached copy
// is stale.
type Event struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	ID         string    `json:"id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	// Origin identifies the publishing instance so a node can skip the
	// echo of its own events coming back through redis.
	Origin string `json:"origin,omitempty"`
}

const (
	CollectionCertificates = "certificates"
	CollectionResidents    = "residents"
	CollectionSettings     = "barangay_settings"
)
