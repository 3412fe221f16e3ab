package presence

import (
	"sync"
	"time"

	"github.com/medilink/api/internal/instance"
	cache "github.com/patrickmn/go-cache"
)

type Options struct {
	// TypingTTL bounds how long a typing flag can outlive its last
	// update when no stop-typing or disconnect ever arrives.
	TypingTTL time.Duration

	Prometheus instance.Prometheus
}

type registry struct {
	mu      sync.RWMutex
	entries map[string]instance.PresenceEntry

	typing *cache.Cache

	prometheus instance.Prometheus
}

func New(opt Options) instance.Presence {
	ttl := opt.TypingTTL
	if ttl == 0 {
		ttl = time.Minute
	}

	return &registry{
		entries:    make(map[string]instance.PresenceEntry),
		typing:     cache.New(ttl, ttl*2),
		prometheus: opt.Prometheus,
	}
}

func (r *registry) Register(userID string, conn instance.Connection) (instance.Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prior, had := r.entries[userID]

	r.entries[userID] = instance.PresenceEntry{
		UserID:      userID,
		Connection:  conn,
		ConnectedAt: time.Now(),
	}

	if !had {
		r.setGauge(len(r.entries))

		return nil, true
	}

	// A reconnect replaces the stale handle without an observable
	// offline/online flap.
	return prior.Connection, false
}

func (r *registry) UnregisterToken(userID string, token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.entries[userID]
	if !ok || cur.Connection.Token() != token {
		// Either already gone, or a newer handle owns the entry; a late
		// close event from a superseded connection changes nothing.
		return false
	}

	delete(r.entries, userID)
	r.typing.Delete(userID)
	r.setGauge(len(r.entries))

	return true
}

func (r *registry) Lookup(userID string) (instance.Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[userID]
	if !ok {
		return nil, false
	}

	return entry.Connection, true
}

func (r *registry) Each(fn func(entry instance.PresenceEntry)) {
	r.mu.RLock()
	snapshot := make([]instance.PresenceEntry, 0, len(r.entries))

	for _, entry := range r.entries {
		snapshot = append(snapshot, entry)
	}
	r.mu.RUnlock()

	for _, entry := range snapshot {
		fn(entry)
	}
}

func (r *registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

func (r *registry) SetTyping(userID string, isTyping bool) {
	// A toggle, not a queue: the newest write always wins.
	r.typing.SetDefault(userID, isTyping)
}

func (r *registry) IsTyping(userID string) bool {
	v, ok := r.typing.Get(userID)
	if !ok {
		return false
	}

	return v.(bool)
}

func (r *registry) ClearTyping(userID string) {
	r.typing.Delete(userID)
}

func (r *registry) setGauge(n int) {
	if r.prometheus != nil {
		r.prometheus.OnlineUsers().Set(float64(n))
	}
}
