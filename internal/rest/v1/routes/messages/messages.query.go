package messages

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type queryRoute struct {
	Ctx global.Context
}

func newQuery(gCtx global.Context) rest.Route {
	return &queryRoute{gCtx}
}

func (r *queryRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/query",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type queryBody struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Query Conversation
// @Summary Query Conversation
// @Description Full message history between two users, oldest first
// @Tags messages
// @Accept json
// @Produce json
// @Success 200 {array} model.Message
// @Router /messages/query [post]
func (r *queryRoute) Handler(ctx *rest.Ctx) rest.APIError {
	body := queryBody{}
	if err := ctx.BindJSON(&body); err != nil {
		return errors.From(err)
	}

	from, err := primitive.ObjectIDFromHex(body.From)
	if err != nil {
		return errors.ErrBadObjectID().SetDetail(err.Error())
	}

	to, err := primitive.ObjectIDFromHex(body.To)
	if err != nil {
		return errors.ErrBadObjectID().SetDetail(err.Error())
	}

	actor, _ := ctx.GetActor()
	if actor.ID != from && actor.ID != to {
		return errors.ErrInsufficientRole().SetDetail("not a participant of this conversation")
	}

	messages, err := r.Ctx.Inst().Query.Conversation(ctx, from, to)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, messages)
}
