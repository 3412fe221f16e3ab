package dispatch

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// startReclaim runs the lease sweep until ctx is done. A reservation that is
// never confirmed or released within the reclaim window reverts to available
// so a crashed caller cannot strand an EMP.
func (c *coordinator) startReclaim(ctx context.Context, sweepEvery time.Duration) {
	if c.reclaimAfter < 0 {
		return
	}

	if sweepEvery == 0 {
		sweepEvery = time.Minute
	}

	go func() {
		ticker := time.NewTicker(sweepEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep(ctx)
			}
		}
	}()
}

func (c *coordinator) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-c.reclaimAfter)

	c.resMu.Lock()
	expired := make([]primitive.ObjectID, 0)

	for empID, res := range c.reservations {
		if res.reservedAt.Before(cutoff) {
			expired = append(expired, empID)
		}
	}
	c.resMu.Unlock()

	for _, empID := range expired {
		if err := c.Release(ctx, empID); err != nil {
			zap.S().Errorw("failed to reclaim stuck reservation",
				"emp_id", empID.Hex(),
				"error", err,
			)

			continue
		}

		if c.prometheus != nil {
			c.prometheus.ReservationsReclaimed().Inc()
		}

		zap.S().Warnw("reclaimed stuck reservation",
			"emp_id", empID.Hex(),
			"reclaim_after", c.reclaimAfter,
		)
	}
}
