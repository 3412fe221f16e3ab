package gateway

import (
	"context"
	"time"

	"github.com/medilink/api/internal/errors"
	"github.com/medilink/api/internal/instance"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Options struct {
	Enabled    bool
	SmsURL     string
	FromNumber string
	AuthToken  string
}

type gateway struct {
	opt    Options
	client *fasthttp.Client
}

// New returns the SMS notification gateway client. With Enabled false every
// send is a logged no-op, which keeps local development off the provider.
func New(opt Options) instance.Gateway {
	return &gateway{
		opt: opt,
		client: &fasthttp.Client{
			ReadTimeout:  time.Second * 10,
			WriteTimeout: time.Second * 10,
		},
	}
}

type smsRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

func (g *gateway) SendSMS(ctx context.Context, to string, body string) error {
	if !g.opt.Enabled {
		zap.S().Debugw("sms gateway disabled, dropping notification",
			"to", to,
		)

		return nil
	}

	b, err := json.Marshal(smsRequest{
		From: g.opt.FromNumber,
		To:   to,
		Body: body,
	})
	if err != nil {
		return errors.ErrGatewayUnavailable().SetDetail(err.Error())
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(g.opt.SmsURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")

	if g.opt.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.opt.AuthToken)
	}

	req.SetBody(b)

	deadline := time.Now().Add(time.Second * 10)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err = g.client.DoDeadline(req, resp, deadline); err != nil {
		return errors.ErrGatewayUnavailable().SetDetail(err.Error())
	}

	if resp.StatusCode() >= 400 {
		return errors.ErrGatewayUnavailable().SetDetail("sms provider returned %d", resp.StatusCode())
	}

	return nil
}
