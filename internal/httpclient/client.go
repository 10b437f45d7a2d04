// Package httpclient builds outbound request URIs and performs single
// synchronous HTTP calls on top of resty.
package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"fsanano/rest-client/internal/apperr"
)

const maxErrorBody = 512

// Response is the raw result of one call.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
	// SentHeader holds the headers that went out with the request.
	SentHeader http.Header
}

// Transport performs exactly one HTTP round trip per call.
type Transport interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

type Config struct {
	// Timeout of zero leaves resty's default (no timeout).
	Timeout time.Duration
	// Base is the underlying round tripper, http.DefaultTransport if nil.
	Base http.RoundTripper
}

// RestyClient adapts resty.Client to Transport.
type RestyClient struct {
	client *resty.Client
	log    *zap.Logger
}

func NewRestyClient(cfg Config, log *zap.Logger) *RestyClient {
	if log == nil {
		log = zap.NewNop()
	}
	c := resty.New()
	c.SetTransport(&compressionTransport{Base: cfg.Base})
	c.SetLogger(log.Sugar())
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return &RestyClient{client: c, log: log}
}

func (r *RestyClient) Do(ctx context.Context, req Request) (*Response, error) {
	if req.URL == nil {
		return nil, apperr.New(apperr.KindInvalidArgument, "", "request has no URL")
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	rr := r.client.R().SetContext(ctx)
	for k, vs := range req.Header {
		for _, v := range vs {
			rr.Header.Add(k, v)
		}
	}
	if req.Body != nil {
		rr.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	target := req.URL.String()
	resp, err := rr.Execute(method, target)
	if err != nil {
		return nil, apperr.New(apperr.KindTransport, "", fmt.Sprintf("%s %s: %v", method, target, err))
	}

	out := &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Header:     resp.Header(),
		SentHeader: rr.Header.Clone(),
	}
	r.log.Debug("http call",
		zap.String("method", method),
		zap.String("uri", target),
		zap.Int("status", out.StatusCode),
		zap.ByteString("body", out.Body),
	)

	if out.StatusCode < 200 || out.StatusCode > 299 {
		return out, apperr.New(apperr.KindTransport, "",
			fmt.Sprintf("%s %s: unexpected status code %d: %s", method, target, out.StatusCode, excerpt(out.Body)))
	}
	return out, nil
}

func (r *RestyClient) Get(ctx context.Context, u *url.URL, header http.Header) (*Response, error) {
	return r.Do(ctx, NewGet(u, header))
}

func (r *RestyClient) PostJSON(ctx context.Context, u *url.URL, body any) (*Response, error) {
	return r.Do(ctx, NewPostJSON(u, body))
}

// DoInto performs req and decodes a successful body with decode.
func DoInto[T any](ctx context.Context, t Transport, req Request, decode func([]byte) (T, error)) (T, *Response, error) {
	var zero T
	resp, err := t.Do(ctx, req)
	if err != nil {
		return zero, resp, err
	}
	v, err := decode(resp.Body)
	if err != nil {
		return zero, resp, err
	}
	return v, resp, nil
}

func excerpt(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
