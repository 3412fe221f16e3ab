package dispatch

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/instance"
	"github.com/medilink/api/internal/svc/auth"
	"github.com/medilink/api/internal/svc/availability"
	"github.com/medilink/api/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCoordinator(t *testing.T, store instance.Availability) instance.Dispatch {
	t.Helper()

	return New(context.Background(), Options{
		Availability: store,
		Auth:         auth.New(auth.Options{JWTSecret: "test-secret"}),
	})
}

func TestAssignPicksLongestIdle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := availability.NewMemory()
	d := newTestCoordinator(t, store)

	e1 := primitive.NewObjectID()
	e2 := primitive.NewObjectID()
	e3 := primitive.NewObjectID()

	for _, id := range []primitive.ObjectID{e1, e2, e3} {
		_, err := store.SetAvailability(ctx, id, true)
		testutil.IsNil(t, err, "seed availability")
	}

	session, err := d.Assign(ctx, "caller-1")
	testutil.IsNil(t, err, "first assign")
	testutil.Assert(t, e1, session.EmpID, "first assign takes the longest-idle EMP")

	session, err = d.Assign(ctx, "caller-2")
	testutil.IsNil(t, err, "second assign")
	testutil.Assert(t, e2, session.EmpID, "second assign takes the next in line")
}

func TestAssignEmptyPool(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d := newTestCoordinator(t, availability.NewMemory())

	_, err := d.Assign(ctx, "caller-1")
	testutil.AssertErr(t, errors.ErrNoAvailableEMP(), err, "empty pool")
}

func TestAssignExhaustsPool(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := availability.NewMemory()
	d := newTestCoordinator(t, store)

	emp := primitive.NewObjectID()
	_, err := store.SetAvailability(ctx, emp, true)
	testutil.IsNil(t, err, "seed availability")

	_, err = d.Assign(ctx, "caller-1")
	testutil.IsNil(t, err, "pool of one")

	_, err = d.Assign(ctx, "caller-2")
	testutil.AssertErr(t, errors.ErrNoAvailableEMP(), err, "pool exhausted")
}

func TestReleaseRequeuesAtBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := availability.NewMemory()
	d := newTestCoordinator(t, store)

	e1 := primitive.NewObjectID()
	e2 := primitive.NewObjectID()

	_, _ = store.SetAvailability(ctx, e1, true)
	_, _ = store.SetAvailability(ctx, e2, true)

	session, err := d.Assign(ctx, "caller-1")
	testutil.IsNil(t, err, "assign e1")
	testutil.Assert(t, e1, session.EmpID, "e1 first")

	testutil.IsNil(t, d.Release(ctx, e1), "release e1")

	// e1 re-entered behind e2, so e2 goes out next.
	session, err = d.Assign(ctx, "caller-2")
	testutil.IsNil(t, err, "assign e2")
	testutil.Assert(t, e2, session.EmpID, "e2 before the re-queued e1")

	session, err = d.Assign(ctx, "caller-3")
	testutil.IsNil(t, err, "assign e1 again")
	testutil.Assert(t, e1, session.EmpID, "e1 cycles back")
}

func TestConcurrentAssignsReserveOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := availability.NewMemory()
	d := newTestCoordinator(t, store)

	emp := primitive.NewObjectID()
	_, _ = store.SetAvailability(ctx, emp, true)

	const callers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := d.Assign(ctx, "caller")

			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				succeeded++
			} else {
				rejected++
			}
		}()
	}

	wg.Wait()

	testutil.Assert(t, 1, succeeded, "exactly one caller wins the EMP")
	testutil.Assert(t, callers-1, rejected, "everyone else is rejected")
}

func TestSessionToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := availability.NewMemory()

	a := auth.New(auth.Options{JWTSecret: "test-secret"})

	d := New(context.Background(), Options{
		Availability: store,
		Auth:         a,
		RoomPrefix:   "incident",
		SessionTTL:   time.Minute * 30,
	})

	emp := primitive.NewObjectID()
	_, _ = store.SetAvailability(ctx, emp, true)

	session, err := d.Assign(ctx, "caller-1")
	testutil.IsNil(t, err, "assign")
	testutil.Assert(t, true, strings.HasPrefix(session.RoomName, "incident-"), "room carries the configured prefix")

	claims := &auth.JWTClaimCallSession{}

	_, err = a.VerifyJWT(session.Token, claims)
	testutil.IsNil(t, err, "token verifies")
	testutil.Assert(t, "caller-1", claims.Identity, "token bound to the requester")
	testutil.Assert(t, emp.Hex(), claims.EmpID, "token bound to the EMP")
	testutil.Assert(t, session.RoomName, claims.Room, "token bound to the room")

	ttl := time.Until(claims.ExpiresAt.Time)
	testutil.Assert(t, true, ttl > time.Minute*29 && ttl <= time.Minute*30, "expiry honors the session TTL")
}

func TestRoomNamesAreUnique(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := availability.NewMemory()
	d := newTestCoordinator(t, store)

	seen := map[string]bool{}

	for i := 0; i < 10; i++ {
		emp := primitive.NewObjectID()
		_, _ = store.SetAvailability(ctx, emp, true)

		session, err := d.Assign(ctx, "caller")
		testutil.IsNil(t, err, "assign")
		testutil.Assert(t, false, seen[session.RoomName], "room name not reused")
		seen[session.RoomName] = true
	}
}

func TestReclaimStuckReservation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := availability.NewMemory()

	d := New(ctx, Options{
		Availability: store,
		Auth:         auth.New(auth.Options{JWTSecret: "test-secret"}),
		ReclaimAfter: time.Millisecond * 20,
		ReclaimSweep: time.Millisecond * 10,
	})

	emp := primitive.NewObjectID()
	_, _ = store.SetAvailability(ctx, emp, true)

	_, err := d.Assign(ctx, "caller-1")
	testutil.IsNil(t, err, "assign")

	_, err = d.Assign(ctx, "caller-2")
	testutil.AssertErr(t, errors.ErrNoAvailableEMP(), err, "EMP still reserved")

	// The caller never released. The sweep must hand the EMP back.
	deadline := time.Now().Add(time.Second * 2)

	for {
		if _, err = d.Assign(ctx, "caller-3"); err == nil {
			break
		}

		if time.Now().After(deadline) {
			t.Fatal("reservation was never reclaimed")
		}

		time.Sleep(time.Millisecond * 10)
	}
}

func TestAvailabilityLastUpdatedAdvances(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := availability.NewMemory()

	emp := primitive.NewObjectID()

	first, err := store.SetAvailability(ctx, emp, true)
	testutil.IsNil(t, err, "first write")

	// Same value, but the write itself must still move the record to the
	// back of the fairness queue.
	second, err := store.SetAvailability(ctx, emp, true)
	testutil.IsNil(t, err, "second write")
	testutil.Assert(t, true, second.LastUpdated.After(first.LastUpdated), "last updated advances on every write")
}
