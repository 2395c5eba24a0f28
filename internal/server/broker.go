package server

import (
	"encoding/json"
	"sync"

	"github.com/partyword/clueroom/internal/game"
)

// Broker is an in-process pub/sub for room snapshots, keyed by room id.
// Every successful mutation publishes the full serialized snapshot; a
// subscriber that cannot keep up drops frames and re-syncs from the next
// one.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel receiving JSON-encoded snapshots for the
// given room.
func (b *Broker) Subscribe(roomID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[roomID] == nil {
		b.subs[roomID] = make(map[chan []byte]struct{})
	}
	b.subs[roomID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the room's subscribers.
func (b *Broker) Unsubscribe(roomID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[roomID], ch)
	if len(b.subs[roomID]) == 0 {
		delete(b.subs, roomID)
	}
	b.mu.Unlock()
}

// Publish serializes the room and fans the snapshot out to all of its
// subscribers. Iteration happens under a read lock over the subscriber
// map; sends never block.
func (b *Broker) Publish(room *game.Room) {
	snapshot := room.Snapshot()
	data, _ := json.Marshal(snapshot)
	b.mu.RLock()
	for ch := range b.subs[room.ID()] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
