package game

import (
	"context"
	"sync"
	"time"
)

// Registry hands out rooms by slug, creating them on first use. Rooms
// idle past the configured TTL are reaped; a reaped slug simply gets a
// fresh room on its next request.
type Registry struct {
	mu          sync.RWMutex
	rooms       map[string]*Room
	totalRounds int
	idleTTL     time.Duration
}

func NewRegistry(totalRounds int, idleTTL time.Duration) *Registry {
	return &Registry{
		rooms:       make(map[string]*Room),
		totalRounds: totalRounds,
		idleTTL:     idleTTL,
	}
}

func (r *Registry) Get(slug string) *Room {
	r.mu.RLock()
	room, ok := r.rooms[slug]
	r.mu.RUnlock()
	if ok {
		return room
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock.
	if room, ok := r.rooms[slug]; ok {
		return room
	}
	room = NewRoom(slug, r.totalRounds)
	r.rooms[slug] = room
	return room
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// StartReaper drops idle rooms on a fixed cadence until ctx is done.
func (r *Registry) StartReaper(ctx context.Context) {
	if r.idleTTL <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(r.idleTTL / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.reap(time.Now().Add(-r.idleTTL))
			}
		}
	}()
}

func (r *Registry) reap(cutoff time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slug, room := range r.rooms {
		if room.LastActive().Before(cutoff) {
			delete(r.rooms, slug)
		}
	}
}
