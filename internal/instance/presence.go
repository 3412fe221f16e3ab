package instance

import "time"

// Connection is one live transport handle owned by the presence registry
// entry that registered it.
type Connection interface {
	// Token identifies this handle uniquely across reconnects of the
	// same user.
	Token() string
	// Write enqueues a frame for ordered delivery. It never blocks; a
	// full queue or closed connection reports false and the frame is
	// dropped.
	Write(payload []byte) bool
	// Close tears the transport down. Safe to call more than once.
	Close()
}

type PresenceEntry struct {
	UserID      string
	Connection  Connection
	ConnectedAt time.Time
}

type Presence interface {
	// Register inserts or replaces the entry for userID. The displaced
	// handle, if any, is returned so the caller can close it. online is
	// true only when the user had no routable handle before this call.
	Register(userID string, conn Connection) (replaced Connection, online bool)

	// UnregisterToken removes the entry only if it still owns the given
	// handle token, so a late close event from a superseded connection
	// cannot evict its replacement. offline is true only when the last
	// routable handle was removed by this call.
	UnregisterToken(userID string, token string) (offline bool)

	Lookup(userID string) (Connection, bool)
	Each(fn func(entry PresenceEntry))
	Size() int

	SetTyping(userID string, isTyping bool)
	IsTyping(userID string) bool
	ClearTyping(userID string)
}
