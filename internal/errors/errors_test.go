package errors

import (
	"fmt"
	"testing"

	"github.com/medilink/api/internal/testutil"
)

func TestErrorSurface(t *testing.T) {
	t.Parallel()

	err := ErrNoAvailableEMP()
	testutil.Assert(t, 73404, err.Code(), "error code")
	testutil.Assert(t, 404, err.ExpectedHTTPStatus(), "expected http status")
	testutil.Assert(t, "No Available EMPs", err.Message(), "message")
	testutil.Assert(t, "No Available EMPs [73404]", err.Error(), "error string carries the code")
}

func TestSetDetail(t *testing.T) {
	t.Parallel()

	err := ErrValidation().SetDetail("unknown status %q", "Asleep")
	testutil.Assert(t, `Validation Failed (unknown status "Asleep")`, err.Message(), "detail is appended")
}

func TestFields(t *testing.T) {
	t.Parallel()

	err := ErrMissingField().SetFields(Fields{"field": "empId"})
	testutil.Assert(t, "empId", err.GetFields()["field"].(string), "fields round-trip")
}

func TestWithHTTPStatus(t *testing.T) {
	t.Parallel()

	err := ErrStoreUnavailable().WithHTTPStatus(503)
	testutil.Assert(t, 503, err.ExpectedHTTPStatus(), "status override")
}

func TestFrom(t *testing.T) {
	t.Parallel()

	orig := ErrUnknownUser()
	testutil.Assert(t, orig.Code(), From(orig).Code(), "api errors pass through")

	wrapped := From(fmt.Errorf("mongo: connection refused"))
	testutil.Assert(t, ErrInternalServerError().Code(), wrapped.Code(), "plain errors wrap as internal")
}

func TestFreshInstances(t *testing.T) {
	t.Parallel()

	a := ErrInvalidRequest().SetFields(Fields{"x": 1})
	b := ErrInvalidRequest()

	// Each call mints a new value, so decorating one request's error
	// cannot leak into another's.
	testutil.Assert(t, 0, len(b.GetFields()), "instances do not share fields")
	testutil.Assert(t, 1, len(a.GetFields()), "decorated instance keeps its fields")
}
