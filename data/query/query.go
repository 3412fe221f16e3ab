package query

import (
	"context"
	"time"

	"github.com/medilink/api/data/model"
	cache "github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoInstance is the slice of the mongo service the read side needs.
type MongoInstance interface {
	Collection(name model.CollectionName) *mongo.Collection
	Ping(ctx context.Context) error
}

type Query struct {
	mongo MongoInstance
	c     *cache.Cache
}

func New(mongoInst MongoInstance) *Query {
	return &Query{
		mongo: mongoInst,
		c:     cache.New(time.Minute*1, time.Minute*5),
	}
}
