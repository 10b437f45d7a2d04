package backend

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"fsanano/rest-client/internal/apperr"
	"fsanano/rest-client/internal/httpclient"
	"fsanano/rest-client/internal/mapper"
	"fsanano/rest-client/internal/model"
)

const (
	getCallObjPath  = "/api/server/get-call-obj"
	getCallListPath = "/api/server/get-call-list"
	postCallPath    = "/api/server/post-call/{query}"

	DefaultExchangePath = "/api/server/exchange-call"
)

type Config struct {
	// Origin is scheme, host and port of the backend, e.g. http://localhost:7070.
	Origin string
	// ExchangePath is the authorized-list path. Empty disables the call.
	ExchangePath string
}

// Client calls the item backend.
type Client struct {
	transport httpclient.Transport
	config    Config
	log       *zap.Logger
}

func NewClient(cfg Config, transport httpclient.Transport, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		transport: transport,
		config:    cfg,
		log:       log.With(zap.String("client", "backend")),
	}
}

// GetCallObject fetches a single item matching query.
func (c *Client) GetCallObject(ctx context.Context, query string) (model.Item, error) {
	const op = "backend.GetCallObject"

	u, err := httpclient.BuildURI(c.config.Origin, getCallObjPath, nil, url.Values{"query": {query}})
	if err != nil {
		return model.Item{}, apperr.WithOp(op, err)
	}

	item, resp, err := httpclient.DoInto(ctx, c.transport, httpclient.NewGet(u, nil), mapper.DecodeItem)
	c.logCall(u, resp)
	if err != nil {
		return model.Item{}, apperr.WithOp(op, err)
	}
	return item, nil
}

// GetCallList fetches every item listed under "items".
func (c *Client) GetCallList(ctx context.Context) ([]model.Item, error) {
	const op = "backend.GetCallList"

	u, err := httpclient.BuildURI(c.config.Origin, getCallListPath, nil, nil)
	if err != nil {
		return nil, apperr.WithOp(op, err)
	}

	items, resp, err := httpclient.DoInto(ctx, c.transport, httpclient.NewGet(u, nil), mapper.DecodeItems)
	c.logCall(u, resp)
	if err != nil {
		return nil, apperr.WithOp(op, err)
	}
	return items, nil
}

// PostCall creates an item named by query, sending the default credentials as body.
func (c *Client) PostCall(ctx context.Context, query string) (model.Item, error) {
	const op = "backend.PostCall"

	u, err := httpclient.BuildURI(c.config.Origin, postCallPath, map[string]string{"query": query}, nil)
	if err != nil {
		return model.Item{}, apperr.WithOp(op, err)
	}

	req := httpclient.NewPostJSON(u, model.DefaultCredentials())
	item, resp, err := httpclient.DoInto(ctx, c.transport, req, mapper.DecodeItem)
	c.logCall(u, resp)
	if err != nil {
		return model.Item{}, apperr.WithOp(op, err)
	}
	return item, nil
}

// ExchangeCall fetches the item list on behalf of the bearer of token.
func (c *Client) ExchangeCall(ctx context.Context, token string) ([]model.Item, error) {
	const op = "backend.ExchangeCall"

	if c.config.ExchangePath == "" {
		return nil, apperr.New(apperr.KindNotImplemented, op, "authorized list call has no backend path configured")
	}
	if token == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, op, "bearer token is required")
	}

	u, err := httpclient.BuildURI(c.config.Origin, c.config.ExchangePath, nil, nil)
	if err != nil {
		return nil, apperr.WithOp(op, err)
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	items, resp, err := httpclient.DoInto(ctx, c.transport, httpclient.NewGet(u, header), mapper.DecodeItems)
	c.logCall(u, resp)
	if err != nil {
		return nil, apperr.WithOp(op, err)
	}
	return items, nil
}

func (c *Client) logCall(u *url.URL, resp *httpclient.Response) {
	if resp == nil {
		c.log.Info("call failed", zap.Stringer("uri", u))
		return
	}
	c.log.Info("call", zap.Stringer("uri", u), zap.Int("statusCode", resp.StatusCode))
}
