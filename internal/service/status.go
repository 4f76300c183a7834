package service

import (
	"sync"

	"github.com/fitjourney/fitsync/models"
)

// statusBroadcaster fans out sync status snapshots to subscribers.
// Each subscriber owns a buffer-1 channel: publishing drops the stale
// buffered value before sending, so slow readers always observe the
// latest state and the engine never blocks on a subscriber.
type statusBroadcaster struct {
	mu     sync.Mutex
	latest models.SyncStatus
	subs   map[int]chan models.SyncStatus
	nextID int
}

func newStatusBroadcaster() *statusBroadcaster {
	return &statusBroadcaster{subs: make(map[int]chan models.SyncStatus)}
}

// Latest returns the last published status.
func (b *statusBroadcaster) Latest() models.SyncStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest
}

// Publish records status as the latest value and pushes it to all
// subscribers, replacing any undelivered previous value.
func (b *statusBroadcaster) Publish(status models.SyncStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.latest = status
	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- status:
		default:
		}
	}
}

// Subscribe registers a new observer. The current latest status is
// delivered immediately so late subscribers do not miss state.
func (b *statusBroadcaster) Subscribe() (<-chan models.SyncStatus, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan models.SyncStatus, 1)
	ch <- b.latest
	b.subs[id] = ch
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
