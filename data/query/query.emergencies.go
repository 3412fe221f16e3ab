package query

import (
	"context"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (q *Query) Emergencies(ctx context.Context) ([]model.Emergency, error) {
	cur, err := q.mongo.Collection(model.CollectionNameEmergencies).Find(ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	emergencies := []model.Emergency{}
	if err = cur.All(ctx, &emergencies); err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return emergencies, nil
}

func (q *Query) EmergencyByID(ctx context.Context, id primitive.ObjectID) (model.Emergency, error) {
	emergency := model.Emergency{}

	err := q.mongo.Collection(model.CollectionNameEmergencies).FindOne(ctx, bson.M{"_id": id}).Decode(&emergency)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return emergency, errors.ErrUnknownEmergency()
		}

		return emergency, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return emergency, nil
}
