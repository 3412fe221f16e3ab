package presence

import (
	"testing"

	"github.com/medilink/api/internal/instance"
	"github.com/medilink/api/internal/testutil"
)

type fakeConn struct {
	token  string
	closed bool
	frames [][]byte
}

func (c *fakeConn) Token() string { return c.token }

func (c *fakeConn) Write(payload []byte) bool {
	if c.closed {
		return false
	}

	c.frames = append(c.frames, payload)

	return true
}

func (c *fakeConn) Close() { c.closed = true }

func TestRegisterLookup(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	conn := &fakeConn{token: "a"}

	replaced, online := r.Register("u1", conn)
	testutil.IsNil(t, replaced, "first register displaces nothing")
	testutil.Assert(t, true, online, "first register is an online transition")
	testutil.Assert(t, 1, r.Size(), "registry size")

	got, ok := r.Lookup("u1")
	testutil.Assert(t, true, ok, "lookup finds the user")
	testutil.Assert(t, "a", got.Token(), "lookup returns the live handle")

	_, ok = r.Lookup("u2")
	testutil.Assert(t, false, ok, "unknown user is absent")
}

func TestReconnectReplacesWithoutTransition(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	first := &fakeConn{token: "a"}
	second := &fakeConn{token: "b"}

	_, _ = r.Register("u1", first)

	replaced, online := r.Register("u1", second)
	testutil.Assert(t, false, online, "reconnect is not an online transition")
	testutil.IsNotNil(t, replaced, "reconnect returns the displaced handle")
	testutil.Assert(t, "a", replaced.Token(), "displaced handle is the first connection")
	testutil.Assert(t, 1, r.Size(), "registry size unchanged")

	got, _ := r.Lookup("u1")
	testutil.Assert(t, "b", got.Token(), "new handle owns the entry")
}

func TestStaleUnregisterIsIgnored(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	first := &fakeConn{token: "a"}
	second := &fakeConn{token: "b"}

	_, _ = r.Register("u1", first)
	_, _ = r.Register("u1", second)

	// The first connection's close event arrives after it was replaced.
	offline := r.UnregisterToken("u1", "a")
	testutil.Assert(t, false, offline, "stale close evicts nothing")
	testutil.Assert(t, 1, r.Size(), "replacement survives the stale close")

	offline = r.UnregisterToken("u1", "b")
	testutil.Assert(t, true, offline, "owning handle goes offline")
	testutil.Assert(t, 0, r.Size(), "registry empty")
}

func TestUnregisterUnknownUser(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	offline := r.UnregisterToken("nobody", "a")
	testutil.Assert(t, false, offline, "unknown user is a no-op")
}

func TestTypingToggle(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	testutil.Assert(t, false, r.IsTyping("u1"), "not typing initially")

	r.SetTyping("u1", true)
	testutil.Assert(t, true, r.IsTyping("u1"), "typing after set")

	// Toggling the same direction twice stays stable.
	r.SetTyping("u1", true)
	testutil.Assert(t, true, r.IsTyping("u1"), "typing after repeated set")

	r.SetTyping("u1", false)
	testutil.Assert(t, false, r.IsTyping("u1"), "not typing after stop")

	r.SetTyping("u1", true)
	r.ClearTyping("u1")
	testutil.Assert(t, false, r.IsTyping("u1"), "cleared on disconnect")
}

func TestStaleUnregisterKeepsTyping(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	first := &fakeConn{token: "a"}
	second := &fakeConn{token: "b"}

	_, _ = r.Register("u1", first)
	_, _ = r.Register("u1", second)
	r.SetTyping("u1", true)

	// The replaced connection's close event arrives late. It must not
	// wipe the replacement session's typing flag.
	_ = r.UnregisterToken("u1", "a")
	testutil.Assert(t, true, r.IsTyping("u1"), "stale close leaves typing untouched")

	_ = r.UnregisterToken("u1", "b")
	testutil.Assert(t, false, r.IsTyping("u1"), "owning close clears typing")
}

func TestUnregisterClearsTyping(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	conn := &fakeConn{token: "a"}
	_, _ = r.Register("u1", conn)
	r.SetTyping("u1", true)

	_ = r.UnregisterToken("u1", "a")
	testutil.Assert(t, false, r.IsTyping("u1"), "typing does not survive the connection")
}

func TestEachSnapshots(t *testing.T) {
	t.Parallel()

	r := New(Options{})

	_, _ = r.Register("u1", &fakeConn{token: "a"})
	_, _ = r.Register("u2", &fakeConn{token: "b"})

	seen := map[string]bool{}

	r.Each(func(entry instance.PresenceEntry) {
		seen[entry.UserID] = true

		// Mutating the registry mid-iteration must not deadlock.
		_, _ = r.Lookup(entry.UserID)
	})

	testutil.Assert(t, 2, len(seen), "every entry visited once")
	testutil.Assert(t, true, seen["u1"] && seen["u2"], "both users visited")
}
