package graphapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/orgball2608/insta-shop-sync/pkg/config"
	"github.com/orgball2608/insta-shop-sync/pkg/logger"
	"github.com/orgball2608/insta-shop-sync/pkg/retry"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const maxErrorBody = 2048

// Caller issues a Graph API request and decodes the JSON body into out.
// Every upstream call goes through it; callers never retry on their own.
//
//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mocks/mock.go
type Caller interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	retry      retry.Config
	limiter    *rate.Limiter
	logger     logger.Logger
}

var _ Caller = (*Client)(nil)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *Client {
	var limiter *rate.Limiter
	if rps := opts.Config.Instagram.RequestsPerSecond; rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), max(opts.Config.Instagram.Burst, 1))
	}

	return NewClient(
		opts.Config.Instagram.GraphURL,
		&http.Client{Timeout: opts.Config.Instagram.Timeout},
		retry.DefaultConfig(),
		limiter,
		opts.Logger,
	)
}

// NewClient builds a client against baseURL. A nil limiter disables throttling.
func NewClient(baseURL string, httpClient *http.Client, retryCfg retry.Config, limiter *rate.Limiter, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		retry:      retryCfg,
		limiter:    limiter,
		logger:     log.WithComponent("GraphAPI"),
	}
}

func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	operation := func() error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return retry.Permanent(err)
			}
		}

		err := c.do(ctx, endpoint, out)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || !isRetryable(err) {
			return retry.Permanent(err)
		}
		return err
	}

	return retry.Do(ctx, c.logger, "GET "+path, operation, c.retry)
}

func (c *Client) do(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseUpstreamError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       truncate(body),
			Message:    fmt.Sprintf("malformed response: %v", err),
		}
	}
	return nil
}

type graphErrorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func parseUpstreamError(status int, body []byte) *UpstreamError {
	upErr := &UpstreamError{
		StatusCode: status,
		Body:       truncate(body),
	}

	var envelope graphErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		upErr.Type = envelope.Error.Type
		upErr.Code = envelope.Error.Code
		upErr.Message = envelope.Error.Message
	}
	return upErr
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
