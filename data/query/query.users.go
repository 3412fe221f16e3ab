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

func (q *Query) UserByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	if v, ok := q.c.Get("user:" + id.Hex()); ok {
		return v.(model.User), nil
	}

	user := model.User{}

	err := q.mongo.Collection(model.CollectionNameUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errors.ErrUnknownUser()
		}

		return user, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	q.c.SetDefault("user:"+id.Hex(), user)

	return user, nil
}

func (q *Query) UserByUsername(ctx context.Context, username string) (model.User, error) {
	user := model.User{}

	err := q.mongo.Collection(model.CollectionNameUsers).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errors.ErrUnknownUser()
		}

		return user, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return user, nil
}

type UserFilter struct {
	Role               model.UserRole
	Specialization     string
	AvailabilityStatus string
	Page               int
	Limit              int
}

func (q *Query) Users(ctx context.Context, filter UserFilter) ([]model.User, error) {
	f := bson.M{}

	if filter.Role != "" {
		f["role"] = filter.Role
	}

	if filter.Specialization != "" {
		f["specialization"] = filter.Specialization
	}

	if filter.AvailabilityStatus != "" {
		f["availability_status"] = filter.AvailabilityStatus
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))

		if filter.Page > 1 {
			opts.SetSkip(int64((filter.Page - 1) * filter.Limit))
		}
	}

	cur, err := q.mongo.Collection(model.CollectionNameUsers).Find(ctx, f, opts)
	if err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	users := []model.User{}
	if err = cur.All(ctx, &users); err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return users, nil
}
