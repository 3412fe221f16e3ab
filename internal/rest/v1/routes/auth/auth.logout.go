package auth

import (
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
)

type logout struct {
	Ctx global.Context
}

func newLogout(gCtx global.Context) rest.Route {
	return &logout{gCtx}
}

func (r *logout) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/logout/{user.id}",
		Method:   rest.GET,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// Logout
// @Summary Logout
// @Description Drop the user's live connection and mark them offline
// @Tags auth
// @Produce json
// @Success 200 {object} auth.logoutResponse
// @Router /auth/logout/{user.id} [get]
func (r *logout) Handler(ctx *rest.Ctx) rest.APIError {
	userID, err := ctx.UserValue("user.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	actor, _ := ctx.GetActor()
	if actor.ID != userID {
		return errors.ErrInsufficientRole().SetDetail("cannot log out another user")
	}

	id := userID.Hex()

	if conn, ok := r.Ctx.Inst().Presence.Lookup(id); ok {
		conn.Close()

		// UnregisterToken also drops the typing flag when it evicts
		// the entry.
		if offline := r.Ctx.Inst().Presence.UnregisterToken(id, conn.Token()); offline {
			r.Ctx.Inst().Events.Broadcast("user-status", map[string]interface{}{
				"userId": id,
				"status": "offline",
			})
		}
	}

	return ctx.JSON(rest.OK, &logoutResponse{LoggedOut: true})
}

type logoutResponse struct {
	LoggedOut bool `json:"logged_out"`
}
