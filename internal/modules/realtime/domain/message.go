package domain

import (
	"strings"
	"time"
)

// ActionUpdated is emitted when an entrypoint's persisted sections changed.
const ActionUpdated = "updated"

// EntrypointUpdate tells connected clients that the content behind an
// entrypoint key changed and should be re-queried. It carries no section data:
// clients always fetch fresh sections through the query surface.
type EntrypointUpdate struct {
	Key       string    `json:"entrypointKey"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// EntrypointTopic names the hub topic for one entrypoint key.
func EntrypointTopic(key string) string {
	return "entrypoint." + strings.TrimSpace(key)
}
