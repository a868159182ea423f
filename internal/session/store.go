package session

import (
	"context"
	"sync"
	"time"
)

// Store is a thread-safe in-memory session registry with TTL eviction.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	players  map[string]*Player
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		players:  make(map[string]*Player),
		ttl:      ttl,
	}
}

func (st *Store) Put(sess *Session, player *Player) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[sess.ID] = sess
	st.players[sess.ID] = player
}

func (st *Store) Get(id string) (*Session, *Player) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[id], st.players[id]
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if p := st.players[id]; p != nil {
		p.Stop()
	}
	delete(st.sessions, id)
	delete(st.players, id)
}

// Cleanup evicts sessions idle past the TTL and stops their players.
func (st *Store) Cleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := time.Now()
	for id, sess := range st.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.UpdatedAt)
		sess.mu.Unlock()
		if idle > st.ttl {
			if p := st.players[id]; p != nil {
				p.Stop()
			}
			delete(st.sessions, id)
			delete(st.players, id)
		}
	}
}

// StartCleanup runs periodic eviction until ctx is cancelled.
func (st *Store) StartCleanup(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.Cleanup()
			}
		}
	}()
}
