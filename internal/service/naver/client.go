// Package naver calls the Naver shopping search API.
//
// Results are decoded strictly: "lprice" must be a JSON integer. The live API
// sends it as a JSON string, so those responses fail with a malformed_response
// error rather than being coerced.
package naver

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"fsanano/rest-client/internal/apperr"
	"fsanano/rest-client/internal/httpclient"
	"fsanano/rest-client/internal/mapper"
	"fsanano/rest-client/internal/model"
)

const (
	DefaultAPIURL  = "https://openapi.naver.com"
	DefaultDisplay = 15

	searchPath = "/v1/search/shop.json"

	headerClientID     = "X-Naver-Client-Id"
	headerClientSecret = "X-Naver-Client-Secret"
)

type Config struct {
	APIURL       string
	ClientID     string
	ClientSecret string
	// Display is the number of results requested per search.
	Display int
}

// Client queries the Naver shopping search API.
type Client struct {
	transport httpclient.Transport
	config    Config
	log       *zap.Logger
}

func NewClient(cfg Config, transport httpclient.Transport, log *zap.Logger) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Display <= 0 {
		cfg.Display = DefaultDisplay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		transport: transport,
		config:    cfg,
		log:       log.With(zap.String("client", "naver")),
	}
}

func (c *Client) SearchItems(ctx context.Context, query string) ([]model.ShoppingItem, error) {
	const op = "naver.SearchItems"

	u, err := httpclient.BuildURI(c.config.APIURL, searchPath, nil, url.Values{
		"display": {strconv.Itoa(c.config.Display)},
		"query":   {query},
	})
	if err != nil {
		return nil, apperr.WithOp(op, err)
	}
	c.log.Info("search", zap.Stringer("uri", u))

	header := http.Header{}
	header.Set(headerClientID, c.config.ClientID)
	header.Set(headerClientSecret, c.config.ClientSecret)

	items, resp, err := httpclient.DoInto(ctx, c.transport, httpclient.NewGet(u, header), mapper.DecodeShoppingItems)
	if resp != nil {
		c.log.Info("NAVER API status", zap.Int("statusCode", resp.StatusCode))
	}
	if err != nil {
		return nil, apperr.WithOp(op, err)
	}
	return items, nil
}
