package mongo

import (
	"context"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/instance"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type SetupOptions struct {
	URI    string
	DB     string
	Direct bool
}

type mongoInst struct {
	client *mongo.Client
	db     *mongo.Database
}

func Setup(ctx context.Context, opt SetupOptions) (instance.Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opt.URI).SetDirect(opt.Direct))
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	inst := &mongoInst{
		client: client,
		db:     client.Database(opt.DB),
	}

	inst.ensureIndexes(ctx)

	return inst, nil
}

func (i *mongoInst) Collection(name model.CollectionName) *mongo.Collection {
	return i.db.Collection(string(name))
}

func (i *mongoInst) Ping(ctx context.Context) error {
	return i.client.Ping(ctx, readpref.Primary())
}

func (i *mongoInst) RawClient() *mongo.Client {
	return i.client
}

func (i *mongoInst) RawDatabase() *mongo.Database {
	return i.db
}

func (i *mongoInst) ensureIndexes(ctx context.Context) {
	indexes := map[model.CollectionName][]mongo.IndexModel{
		model.CollectionNameUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		model.CollectionNameMessages: {
			{Keys: bson.D{{Key: "users", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		model.CollectionNameAvailability: {
			{Keys: bson.D{{Key: "emp_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			// assignment ordering scans this
			{Keys: bson.D{{Key: "is_available", Value: 1}, {Key: "last_updated", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := i.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			zap.S().Warnw("failed to create indexes",
				"collection", coll,
				"error", err,
			)
		}
	}
}
