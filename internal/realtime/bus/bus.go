package bus

import (
	"context"

	"github.com/yungbote/eduviz/internal/realtime"
)

// Bus carries realtime messages between replicas. Every message published is handed to
// the forwarder callback, including on the publishing replica.
type Bus interface {
	Publish(ctx context.Context, msg realtime.SSEMessage) error
	StartForwarder(ctx context.Context, onMsg func(m realtime.SSEMessage)) error
	Close() error
}
