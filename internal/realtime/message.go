package realtime

import "github.com/google/uuid"

type SSEEvent string

const (
	SSEEventAnimationCreated SSEEvent = "AnimationCreated"
	SSEEventAnimationUpdated SSEEvent = "AnimationUpdated"
	SSEEventAnimationDeleted SSEEvent = "AnimationDeleted"
)

type SSEMessage struct {
	Channel string   `json:"channel"`
	Event   SSEEvent `json:"event"`
	Data    any      `json:"data,omitempty"`
}

// AnimationChannel is the channel carrying events for one animation.
func AnimationChannel(id uuid.UUID) string {
	return "animation:" + id.String()
}
