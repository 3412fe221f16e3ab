package users

import (
	"github.com/medilink/api/data/model"
	"github.com/medilink/api/data/mutate"
	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/middleware"
	"github.com/medilink/api/internal/rest/rest"
)

type userUpdate struct {
	Ctx global.Context
}

func newUserUpdate(gCtx global.Context) rest.Route {
	return &userUpdate{gCtx}
}

func (r *userUpdate) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{user.id}",
		Method:   rest.PUT,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type userUpdateBody struct {
	Specialization     *string  `json:"specialization"`
	YearsOfExperience  *int     `json:"years_of_experience"`
	Certifications     []string `json:"certifications"`
	AvailabilityStatus *string  `json:"availability_status"`
	AvatarImage        *string  `json:"avatar_image"`
	Phone              *string  `json:"phone"`
}

// Update User
// @Summary Update User
// @Description Update the EMP profile of a user. Only the user themselves or an admin may do this
// @Param user.id path string true "ID of the user"
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} model.User
// @Router /users/{user.id} [put]
func (r *userUpdate) Handler(ctx *rest.Ctx) rest.APIError {
	userID, err := ctx.UserValue("user.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	actor, _ := ctx.GetActor()
	if actor.ID != userID && actor.Role != model.UserRoleAdmin {
		return errors.ErrInsufficientRole().SetDetail("cannot edit another user's profile")
	}

	body := userUpdateBody{}
	if err := ctx.BindJSON(&body); err != nil {
		return errors.From(err)
	}

	user, err := r.Ctx.Inst().Mutate.UpdateUserProfile(ctx, userID, mutate.UserProfileUpdate{
		Specialization:     body.Specialization,
		YearsOfExperience:  body.YearsOfExperience,
		Certifications:     body.Certifications,
		AvailabilityStatus: body.AvailabilityStatus,
		AvatarImage:        body.AvatarImage,
		Phone:              body.Phone,
	})
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, user)
}
