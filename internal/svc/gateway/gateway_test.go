package gateway

import (
	"context"
	"testing"

	"github.com/medilink/api/internal/testutil"
)

func TestDisabledGatewayIsNoOp(t *testing.T) {
	t.Parallel()

	g := New(Options{Enabled: false})

	err := g.SendSMS(context.Background(), "+15550100", "test")
	testutil.IsNil(t, err, "disabled gateway never fails")
}

func TestUnreachableProvider(t *testing.T) {
	t.Parallel()

	g := New(Options{
		Enabled: true,
		SmsURL:  "http://127.0.0.1:1/sms",
	})

	err := g.SendSMS(context.Background(), "+15550100", "test")
	testutil.IsNotNil(t, err, "unreachable provider reports failure")
}
