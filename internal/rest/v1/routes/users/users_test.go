package users

import (
	"context"
	"testing"

	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/configure"
	"github.com/medilink/api/internal/global"
	"github.com/medilink/api/internal/rest/rest"
	"github.com/medilink/api/internal/testutil"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCtx() *rest.Ctx {
	return &rest.Ctx{RequestCtx: &fasthttp.RequestCtx{}}
}

// runChain walks a route's registered middleware the way the server does,
// stopping at the first error.
func runChain(route rest.Route, ctx *rest.Ctx) rest.APIError {
	for _, h := range route.Config().Middleware {
		if err := h(ctx); err != nil {
			return err
		}
	}

	return nil
}

func TestUpdateRejectsWithoutCredentials(t *testing.T) {
	t.Parallel()

	gCtx := global.New(context.Background(), &configure.Config{})
	route := newUserUpdate(gCtx)

	testutil.Assert(t, true, len(route.Config().Middleware) > 0, "route authenticates")

	// No Authorization header: the chain must stop at the credential
	// check, never at the handler's ownership comparison.
	err := runChain(route, newTestCtx())
	testutil.IsNotNil(t, err, "anonymous request rejected")
	testutil.Assert(t, 70401, err.Code(), "rejected as unauthenticated")
	testutil.Assert(t, "Bad Authorization Header", err.GetFields()["message"].(string), "credential check ran")
}

func TestGetUserRejectsWithoutCredentials(t *testing.T) {
	t.Parallel()

	gCtx := global.New(context.Background(), &configure.Config{})
	route := newUser(gCtx)

	testutil.Assert(t, true, len(route.Config().Middleware) > 0, "route authenticates")

	err := runChain(route, newTestCtx())
	testutil.IsNotNil(t, err, "anonymous request rejected")
	testutil.Assert(t, 70401, err.Code(), "rejected as unauthenticated")
}

func TestApproveAuthenticatesBeforeRoleCheck(t *testing.T) {
	t.Parallel()

	gCtx := global.New(context.Background(), &configure.Config{})
	route := newApprove(gCtx)

	chain := route.Config().Middleware
	testutil.Assert(t, 2, len(chain), "credential check precedes the role check")

	// First link is the credential check, not the role gate.
	err := chain[0](newTestCtx())
	testutil.IsNotNil(t, err, "anonymous request rejected")
	testutil.Assert(t, "Bad Authorization Header", err.GetFields()["message"].(string), "credential check ran first")

	// With an authenticated admin the role gate passes.
	ctx := newTestCtx()
	ctx.SetActor(model.User{ID: primitive.NewObjectID(), Role: model.UserRoleAdmin})
	testutil.IsNil(t, chain[1](ctx), "admin clears the role gate")

	// A non-admin actor is stopped by the role gate, not the handler.
	ctx = newTestCtx()
	ctx.SetActor(model.User{ID: primitive.NewObjectID(), Role: model.UserRoleApplicant})

	err = chain[1](ctx)
	testutil.IsNotNil(t, err, "applicant rejected")
	testutil.Assert(t, 70403, err.Code(), "rejected on role")
}
