// Package smiles talks to the award-fare search API. One Search call covers
// one destination/date cell; payload interpretation is left to the offer
// engine, the client only guarantees a decoded JSON object.
package smiles

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"

	"miles_watch/internal/config"
	"miles_watch/internal/domain"
	"miles_watch/internal/domain/service/offers"
	"miles_watch/pkg/contextx"
	"miles_watch/pkg/errcodes"
	"miles_watch/pkg/httpx"
	"miles_watch/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals // skip
)

const searchDateLayout = "2006-01-02"

type Client struct {
	http *resty.Client
}

func NewClient(cfg config.Smiles, opts ...httpx.Option) *Client {
	transport := http.DefaultTransport

	if cfg.APIToken != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, staticAuthenticator{token: cfg.APIToken})
	}

	if cfg.DebugHTTP {
		transport = httpx.NewLoggingRoundTripper(transport, opts...)
	}

	client := resty.New().
		SetBaseURL(cfg.APIURL).
		SetTimeout(cfg.Timeout).
		SetTransport(transport).
		SetHeaders(map[string]string{
			"accept":     "application/json",
			"origin":     "https://www.smiles.com.br",
			"referer":    "https://www.smiles.com.br/",
			"user-agent": "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
		})

	return &Client{http: client}
}

// Search fetches the raw payload for one cell. Any non-2xx status is an
// upstream error; the caller decides whether the cycle survives it.
func (c *Client) Search(ctx context.Context, cell offers.Cell) (offers.RawPayload, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"cabin":                  "ALL",
			"originAirportCode":      cell.Origin,
			"destinationAirportCode": cell.Destination,
			"departureDate":          cell.Date.Format(searchDateLayout),
			"returnDate":             "",
			"adults":                 "1",
			"children":               "0",
			"infants":                "0",
			"forceCongener":          "false",
		}).
		Get("")
	if err != nil {
		return nil, domain.WrapError(err, errcodes.SearchUpstreamError, "smiles search request")
	}

	if resp.IsError() {
		logger(ctx).Warn("smiles search non-ok status",
			slog.String(logx.FieldOrigin, cell.Origin),
			slog.String(logx.FieldDestination, cell.Destination),
			slog.Int(logx.FieldResponseStatus, resp.StatusCode()),
		)

		return nil, domain.NewError(
			errcodes.SearchUpstreamError,
			fmt.Sprintf("smiles search status %d", resp.StatusCode()),
		)
	}

	var payload map[string]any
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, domain.WrapError(err, errcodes.SearchUpstreamError, "smiles search payload decode")
	}

	return payload, nil
}

// staticAuthenticator serves a preconfigured bearer token; there is no token
// refresh flow on this API.
type staticAuthenticator struct {
	token string
}

func (a staticAuthenticator) Authenticate(context.Context) error { return nil }

func (a staticAuthenticator) BearerToken() string { return a.token }
