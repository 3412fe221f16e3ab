package events

import (
	"testing"

	"github.com/medilink/api/internal/instance"
	"github.com/medilink/api/internal/svc/presence"
	"github.com/medilink/api/internal/testutil"
)

type fakeConn struct {
	token  string
	full   bool
	frames [][]byte
}

func (c *fakeConn) Token() string { return c.token }

func (c *fakeConn) Write(payload []byte) bool {
	if c.full {
		return false
	}

	c.frames = append(c.frames, payload)

	return true
}

func (c *fakeConn) Close() {}

func newTestFanout() (instance.Events, instance.Presence) {
	p := presence.New(presence.Options{})

	return New(Options{Presence: p}), p
}

func TestEmitToOfflineUser(t *testing.T) {
	t.Parallel()

	e, _ := newTestFanout()

	delivered := e.EmitTo("ghost", "msg-receive", map[string]string{"message": "hi"})
	testutil.Assert(t, false, delivered, "offline user drops the event")
}

func TestEmitToDeliversEnvelope(t *testing.T) {
	t.Parallel()

	e, p := newTestFanout()

	conn := &fakeConn{token: "a"}
	_, _ = p.Register("u1", conn)

	delivered := e.EmitTo("u1", "msg-receive", map[string]string{"message": "hi"})
	testutil.Assert(t, true, delivered, "online user receives the event")
	testutil.Assert(t, 1, len(conn.frames), "one frame written")

	payload := EventPayload{}
	testutil.IsNil(t, json.Unmarshal(conn.frames[0], &payload), "frame decodes")
	testutil.Assert(t, "msg-receive", payload.Event, "envelope names the event")
}

func TestEmitToSaturatedConnection(t *testing.T) {
	t.Parallel()

	e, p := newTestFanout()

	conn := &fakeConn{token: "a", full: true}
	_, _ = p.Register("u1", conn)

	delivered := e.EmitTo("u1", "msg-receive", map[string]string{"message": "hi"})
	testutil.Assert(t, false, delivered, "a full queue drops rather than blocks")
}

func TestEmitToPreservesOrder(t *testing.T) {
	t.Parallel()

	e, p := newTestFanout()

	conn := &fakeConn{token: "a"}
	_, _ = p.Register("u1", conn)

	for i := 0; i < 5; i++ {
		_ = e.EmitTo("u1", "msg-receive", map[string]int{"seq": i})
	}

	testutil.Assert(t, 5, len(conn.frames), "every frame written")

	for i, frame := range conn.frames {
		payload := struct {
			Event string         `json:"event"`
			Data  map[string]int `json:"data"`
		}{}

		testutil.IsNil(t, json.Unmarshal(frame, &payload), "frame decodes")
		testutil.Assert(t, i, payload.Data["seq"], "frames arrive in emit order")
	}
}

func TestBroadcastReachesEveryConnection(t *testing.T) {
	t.Parallel()

	e, p := newTestFanout()

	c1 := &fakeConn{token: "a"}
	c2 := &fakeConn{token: "b"}

	_, _ = p.Register("u1", c1)
	_, _ = p.Register("u2", c2)

	e.Broadcast("user-status", map[string]string{"userId": "u3", "status": "online"})

	testutil.Assert(t, 1, len(c1.frames), "first connection reached")
	testutil.Assert(t, 1, len(c2.frames), "second connection reached")
}
