package instance

import (
	"context"

	"github.com/medilink/api/data/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Dispatch interface {
	// Assign reserves the longest-idle available EMP and returns a call
	// session scoped to the requester, the EMP and a fresh room.
	Assign(ctx context.Context, requesterID string) (model.CallSession, error)

	// Release returns a reserved EMP to the back of the fairness queue.
	Release(ctx context.Context, empID primitive.ObjectID) error
}
