package messages

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Route struct {
	Ctx global.Context
}

func New(gCtx global.Context) rest.Route {
	return &Route{gCtx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/messages",
		Method: rest.POST,
		Children: []rest.Route{
			newQuery(r.Ctx),
			newChats(r.Ctx),
		},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type sendBody struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// Send Message
// @Summary Send Message
// @Description Persist a direct message and deliver it to the recipient's live connection
// @Tags messages
// @Accept json
// @Produce json
// @Success 201 {object} model.Message
// @Router /messages [post]
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	body := sendBody{}
	if err := ctx.BindJSON(&body); err != nil {
		return errors.From(err)
	}

	if body.Message == "" {
		return errors.ErrMissingField().SetFields(errors.Fields{"field": "message"})
	}

	maxSize := r.Ctx.Config().Limits.MaxMessageSize
	if maxSize > 0 && len(body.Message) > maxSize {
		return errors.ErrValidation().SetDetail("message exceeds %d bytes", maxSize)
	}

	actor, _ := ctx.GetActor()

	from := actor.ID
	if body.From != "" {
		var err error
		if from, err = primitive.ObjectIDFromHex(body.From); err != nil {
			return errors.ErrBadObjectID().SetDetail(err.Error())
		}
	}

	if from != actor.ID {
		return errors.ErrInsufficientRole().SetDetail("cannot send messages as another user")
	}

	to, err := primitive.ObjectIDFromHex(body.To)
	if err != nil {
		return errors.ErrBadObjectID().SetDetail(err.Error())
	}

	message, err := r.Ctx.Inst().Mutate.CreateMessage(ctx, from, to, body.Message)
	if err != nil {
		return errors.From(err)
	}

	// Best-effort live delivery. The message is already persisted; an
	// offline recipient picks it up from the conversation query.
	r.Ctx.Inst().Events.EmitTo(to.Hex(), "msg-receive", map[string]interface{}{
		"from":      from.Hex(),
		"message":   message.Text,
		"timestamp": message.CreatedAt,
	})

	return ctx.JSON(rest.Created, message)
}
