package instance

import (
	"context"

	"github.com/medilink/api/data/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Availability interface {
	// SetAvailability upserts the EMP's record. LastUpdated advances on
	// every call, even when the flag value is unchanged.
	SetAvailability(ctx context.Context, empID primitive.ObjectID, isAvailable bool) (model.AvailabilityRecord, error)

	// GetAvailable returns every available record from a single snapshot
	// read, ascending by LastUpdated.
	GetAvailable(ctx context.Context) ([]model.AvailabilityRecord, error)

	// Reserve flips the record to unavailable only if it is currently
	// available, reporting whether exactly one record changed.
	Reserve(ctx context.Context, empID primitive.ObjectID) (bool, error)
}
