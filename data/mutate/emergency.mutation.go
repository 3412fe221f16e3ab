package mutate

import (
	"context"
	"time"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (m *Mutate) CreateEmergency(ctx context.Context, emergency model.Emergency) (model.Emergency, error) {
	now := time.Now()
	emergency.CreatedAt = now
	emergency.UpdatedAt = now

	if emergency.Status == "" {
		emergency.Status = model.EmergencyStatusPending
	}

	res, err := m.mongo.Collection(model.CollectionNameEmergencies).InsertOne(ctx, emergency)
	if err != nil {
		return emergency, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	emergency.ID = res.InsertedID.(primitive.ObjectID)

	return emergency, nil
}

func (m *Mutate) UpdateEmergencyStatus(ctx context.Context, id primitive.ObjectID, status model.EmergencyStatus) (model.Emergency, error) {
	emergency := model.Emergency{}

	err := m.mongo.Collection(model.CollectionNameEmergencies).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		}},
		findOneAndUpdateReturnAfter(),
	).Decode(&emergency)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return emergency, errors.ErrUnknownEmergency()
		}

		return emergency, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return emergency, nil
}
