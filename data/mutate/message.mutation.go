package mutate

import (
	"context"
	"time"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (m *Mutate) CreateMessage(ctx context.Context, from primitive.ObjectID, to primitive.ObjectID, text string) (model.Message, error) {
	message := model.Message{
		Users:     []primitive.ObjectID{from, to},
		Sender:    from,
		Text:      text,
		CreatedAt: time.Now(),
	}

	res, err := m.mongo.Collection(model.CollectionNameMessages).InsertOne(ctx, message)
	if err != nil {
		return message, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	message.ID = res.InsertedID.(primitive.ObjectID)

	return message, nil
}
