package mutate

import (
	"github.com/medilink/api/data/model"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInstance is the slice of the mongo service the write side needs.
type MongoInstance interface {
	Collection(name model.CollectionName) *mongo.Collection
}

type Mutate struct {
	mongo MongoInstance
}

func New(mongoInst MongoInstance) *Mutate {
	return &Mutate{
		mongo: mongoInst,
	}
}

func findOneAndUpdateReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
