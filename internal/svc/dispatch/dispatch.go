package dispatch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/instance"
	"github.com/medilink/api/internal/svc/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Options struct {
	Availability instance.Availability
	Events       instance.Events
	Auth         instance.Auth
	Prometheus   instance.Prometheus

	RoomPrefix   string
	SessionTTL   time.Duration
	ReclaimAfter time.Duration
	ReclaimSweep time.Duration
}

type coordinator struct {
	availability instance.Availability
	events       instance.Events
	auth         instance.Auth
	prometheus   instance.Prometheus

	roomPrefix   string
	sessionTTL   time.Duration
	reclaimAfter time.Duration

	// mu serializes select+reserve. Store I/O suspends the caller, so
	// without it two concurrent assigns could pick the same EMP before
	// either flips the record.
	mu sync.Mutex

	resMu        sync.Mutex
	reservations map[primitive.ObjectID]reservation
}

type reservation struct {
	roomName   string
	reservedAt time.Time
}

func New(ctx context.Context, opt Options) instance.Dispatch {
	c := &coordinator{
		availability: opt.Availability,
		events:       opt.Events,
		auth:         opt.Auth,
		prometheus:   opt.Prometheus,
		roomPrefix:   opt.RoomPrefix,
		sessionTTL:   opt.SessionTTL,
		reclaimAfter: opt.ReclaimAfter,
		reservations: make(map[primitive.ObjectID]reservation),
	}

	if c.roomPrefix == "" {
		c.roomPrefix = "emergency"
	}

	if c.sessionTTL == 0 {
		c.sessionTTL = time.Hour
	}

	// Reclaim defaults on; a negative window disables the sweep.
	if c.reclaimAfter == 0 {
		c.reclaimAfter = time.Minute * 15
	}

	c.startReclaim(ctx, opt.ReclaimSweep)

	return c
}

func (c *coordinator) Assign(ctx context.Context, requesterID string) (model.CallSession, error) {
	session := model.CallSession{}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.availability.GetAvailable(ctx)
	if err != nil {
		return session, err
	}

	// Walk the fairness queue oldest-first. Reserve is conditional, so a
	// record flipped behind our back just moves us to the next candidate.
	var emp primitive.ObjectID

	for _, record := range records {
		ok, err := c.availability.Reserve(ctx, record.EmpID)
		if err != nil {
			return session, err
		}

		if ok {
			emp = record.EmpID
			break
		}
	}

	if emp.IsZero() {
		c.countRejected()

		return session, errors.ErrNoAvailableEMP()
	}

	roomName := c.newRoomName()

	token, err := c.mintSessionToken(requesterID, emp, roomName)
	if err != nil {
		// Reservation must not leak when minting fails.
		if _, rerr := c.availability.SetAvailability(ctx, emp, true); rerr != nil {
			zap.S().Errorw("failed to roll back reservation",
				"emp_id", emp.Hex(),
				"error", rerr,
			)
		}

		return session, errors.ErrInternalServerError().SetDetail("session credential: %s", err.Error())
	}

	c.resMu.Lock()
	c.reservations[emp] = reservation{roomName: roomName, reservedAt: time.Now()}
	c.resMu.Unlock()

	session = model.CallSession{
		EmpID:    emp,
		RoomName: roomName,
		Token:    token,
		IssuedAt: time.Now(),
	}

	// Best-effort push so the EMP's client learns about the call without
	// polling. Offline EMPs simply miss it.
	if c.events != nil {
		c.events.EmitTo(emp.Hex(), "call-assigned", map[string]interface{}{
			"roomName": roomName,
			"userId":   requesterID,
		})
	}

	c.countIssued()

	zap.S().Infow("call assigned",
		"emp_id", emp.Hex(),
		"requester_id", requesterID,
		"room", roomName,
	)

	return session, nil
}

func (c *coordinator) Release(ctx context.Context, empID primitive.ObjectID) error {
	c.resMu.Lock()
	delete(c.reservations, empID)
	c.resMu.Unlock()

	// Re-entry lands at the back of the fairness queue; LastUpdated is
	// refreshed by the store.
	if _, err := c.availability.SetAvailability(ctx, empID, true); err != nil {
		return err
	}

	return nil
}

// newRoomName mints a room identifier unique for the life of the call.
func (c *coordinator) newRoomName() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]

	return fmt.Sprintf("%s-%d-%s", c.roomPrefix, time.Now().UnixMilli(), suffix)
}

func (c *coordinator) mintSessionToken(requesterID string, empID primitive.ObjectID, roomName string) (string, error) {
	now := time.Now()

	return c.auth.SignJWT(&auth.JWTClaimCallSession{
		Identity: requesterID,
		EmpID:    empID.Hex(),
		Room:     roomName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.sessionTTL)),
		},
	})
}

func (c *coordinator) countIssued() {
	if c.prometheus != nil {
		c.prometheus.AssignmentsIssued().Inc()
	}
}

func (c *coordinator) countRejected() {
	if c.prometheus != nil {
		c.prometheus.AssignmentsRejected().Inc()
	}
}
