package bus

import (
	"context"
	"fmt"
	"sync"

	"github.com/yungbote/eduviz/internal/realtime"
)

type localBus struct {
	mu    sync.RWMutex
	onMsg func(m realtime.SSEMessage)
}

// NewLocalBus delivers messages in-process, for single-replica deployments.
func NewLocalBus() Bus {
	return &localBus{}
}

func (b *localBus) Publish(ctx context.Context, msg realtime.SSEMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.RLock()
	fn := b.onMsg
	b.mu.RUnlock()
	if fn != nil {
		fn(msg)
	}
	return nil
}

func (b *localBus) StartForwarder(_ context.Context, onMsg func(m realtime.SSEMessage)) error {
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onMsg = onMsg
	return nil
}

func (b *localBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onMsg = nil
	return nil
}
