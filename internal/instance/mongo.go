package instance

import (
	"context"

	"github.com/medilink/api/data/model"
	"go.mongodb.org/mongo-driver/mongo"
)

type Mongo interface {
	Collection(name model.CollectionName) *mongo.Collection
	Ping(ctx context.Context) error
	RawClient() *mongo.Client
	RawDatabase() *mongo.Database
}
