package messages

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
)

type chats struct {
	Ctx global.Context
}

func newChats(gCtx global.Context) rest.Route {
	return &chats{gCtx}
}

func (r *chats) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/chats/{user.id}",
		Method:   rest.GET,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// Chat List
// @Summary Chat List
// @Description One summary per conversation peer, newest conversation first
// @Param user.id path string true "ID of the user"
// @Tags messages
// @Produce json
// @Success 200 {array} model.ChatSummary
// @Router /messages/chats/{user.id} [get]
func (r *chats) Handler(ctx *rest.Ctx) rest.APIError {
	userID, err := ctx.UserValue("user.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	actor, _ := ctx.GetActor()
	if actor.ID != userID {
		return errors.ErrInsufficientRole().SetDetail("cannot list another user's chats")
	}

	summaries, err := r.Ctx.Inst().Query.Chats(ctx, userID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, summaries)
}
