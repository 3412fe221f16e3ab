package availability

import (
	"context"
	"time"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/instance"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Options struct {
	Mongo instance.Mongo
}

type store struct {
	mongo instance.Mongo
}

// New returns the mongo-backed availability store. It exclusively owns the
// emp_availability collection; the assignment coordinator never touches it
// directly.
func New(opt Options) instance.Availability {
	return &store{
		mongo: opt.Mongo,
	}
}

func (s *store) SetAvailability(ctx context.Context, empID primitive.ObjectID, isAvailable bool) (model.AvailabilityRecord, error) {
	record := model.AvailabilityRecord{}

	// LastUpdated advances unconditionally; fairness ordering depends on
	// it even when the flag value is a no-op write.
	err := s.mongo.Collection(model.CollectionNameAvailability).FindOneAndUpdate(ctx,
		bson.M{"emp_id": empID},
		bson.M{"$set": bson.M{
			"is_available": isAvailable,
			"last_updated": time.Now(),
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&record)
	if err != nil {
		return record, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return record, nil
}

func (s *store) GetAvailable(ctx context.Context) ([]model.AvailabilityRecord, error) {
	cur, err := s.mongo.Collection(model.CollectionNameAvailability).Find(ctx,
		bson.M{"is_available": true},
		options.Find().SetSort(bson.D{{Key: "last_updated", Value: 1}}),
	)
	if err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	// Drain the cursor before anyone acts on the result so selection
	// operates on one snapshot.
	records := []model.AvailabilityRecord{}
	if err = cur.All(ctx, &records); err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return records, nil
}

func (s *store) Reserve(ctx context.Context, empID primitive.ObjectID) (bool, error) {
	res, err := s.mongo.Collection(model.CollectionNameAvailability).UpdateOne(ctx,
		bson.M{"emp_id": empID, "is_available": true},
		bson.M{"$set": bson.M{
			"is_available": false,
			"last_updated": time.Now(),
		}},
	)
	if err != nil {
		return false, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return res.ModifiedCount == 1, nil
}
