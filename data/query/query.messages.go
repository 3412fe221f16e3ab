package query

import (
	"context"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Conversation returns the full message history between two users, oldest
// first.
func (q *Query) Conversation(ctx context.Context, from primitive.ObjectID, to primitive.ObjectID) ([]model.Message, error) {
	cur, err := q.mongo.Collection(model.CollectionNameMessages).Find(ctx,
		bson.M{"users": bson.M{"$all": bson.A{from, to}}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	messages := []model.Message{}
	if err = cur.All(ctx, &messages); err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return messages, nil
}

// Chats returns one summary per conversation peer, newest conversation
// first.
func (q *Query) Chats(ctx context.Context, userID primitive.ObjectID) ([]model.ChatSummary, error) {
	pipeline := bson.A{
		bson.M{"$match": bson.M{"users": userID}},
		bson.M{"$sort": bson.M{"created_at": -1}},
		// Group by the other participant of each message.
		bson.M{"$group": bson.M{
			"_id": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$sender", userID}},
				bson.M{"$arrayElemAt": bson.A{
					"$users",
					bson.M{"$cond": bson.A{
						bson.M{"$eq": bson.A{bson.M{"$arrayElemAt": bson.A{"$users", 0}}, userID}},
						1,
						0,
					}},
				}},
				"$sender",
			}},
			"last_message": bson.M{"$first": "$text"},
			"timestamp":    bson.M{"$first": "$created_at"},
		}},
		bson.M{"$lookup": bson.M{
			"from":         string(model.CollectionNameUsers),
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "user_info",
		}},
		bson.M{"$project": bson.M{
			"_id":          1,
			"last_message": 1,
			"timestamp":    1,
			"name":         bson.M{"$arrayElemAt": bson.A{"$user_info.username", 0}},
		}},
		bson.M{"$sort": bson.M{"timestamp": -1}},
	}

	cur, err := q.mongo.Collection(model.CollectionNameMessages).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	chats := []model.ChatSummary{}
	if err = cur.All(ctx, &chats); err != nil {
		return nil, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return chats, nil
}
