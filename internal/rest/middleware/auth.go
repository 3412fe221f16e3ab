package middleware

import (
	"strings"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/rest"
	"github.com/medilink/api/internal/svc/auth"
	"github.com/medilink/api/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func Auth(gCtx global.Context) rest.Middleware {
	return func(ctx *rest.Ctx) rest.APIError {
		// Parse token from header
		h := utils.B2S(ctx.Request.Header.Peek("Authorization"))
		s := strings.Split(h, "Bearer ")

		if len(s) != 2 {
			return errors.ErrUnauthorized().SetFields(errors.Fields{"message": "Bad Authorization Header"})
		}

		t := s[1]

		// Verify the token
		claims := &auth.JWTClaimUser{}

		if _, err := gCtx.Inst().Auth.VerifyJWT(t, claims); err != nil {
			return errors.ErrUnauthorized().SetFields(errors.Fields{"message": err.Error()})
		}

		// User ID from parsed token
		if claims.UserID == "" {
			return errors.ErrUnauthorized().SetFields(errors.Fields{"message": "Bad Token"})
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return errors.ErrUnauthorized().SetFields(errors.Fields{"message": err.Error()})
		}

		user, err := gCtx.Inst().Query.UserByID(ctx, userID)
		if err != nil {
			return errors.From(err)
		}

		ctx.SetActor(user)

		return nil
	}
}

// RequireRole rejects authenticated requests whose actor holds none of the
// listed roles. Must run after Auth.
func RequireRole(gCtx global.Context, roles ...model.UserRole) rest.Middleware {
	return func(ctx *rest.Ctx) rest.APIError {
		actor, ok := ctx.GetActor()
		if !ok {
			return errors.ErrUnauthorized()
		}

		for _, role := range roles {
			if actor.Role == role {
				return nil
			}
		}

		return errors.ErrInsufficientRole().SetFields(errors.Fields{"required_role": roles})
	}
}
