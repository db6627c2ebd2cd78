// Package gateway is the only way the client reaches the restaurant backend.
// It attaches the bearer token, unwraps response envelopes and normalizes the
// backend's loose shapes into domain entities.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"waiter/config"
	deliverycontext "waiter/internal/delivery/context"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/domain/repository"
	"waiter/internal/errors"
	"waiter/internal/infra/metrics"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// maxResponseBytes caps a backend answer. Larger bodies fail the request
// instead of being decoded from a truncated prefix.
const maxResponseBytes = 4 << 20

// Request outcomes recorded in metrics.
const (
	outcomeOK          = "ok"
	outcomeRejected    = "rejected"
	outcomeUnreachable = "unreachable"
)

// Recorder receives one observation per backend call.
type Recorder interface {
	ObserveRequest(method, route, outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRequest(string, string, string, time.Duration) {}

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// RateLimit is requests per second; zero means unlimited.
	RateLimit float64
	Burst     int
	// HTTPClient overrides the transport. Tests pass httptest clients.
	HTTPClient *http.Client
}

// Client talks JSON over HTTP to the restaurant backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   repository.SessionReader
	limiter    *rate.Limiter
	recorder   Recorder
	logger     *slog.Logger
}

// NewClient creates a backend client. The session is read on every request,
// so a login or logout takes effect on the next call.
func NewClient(opts Options, sessions repository.SessionReader, recorder Recorder, logger *slog.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
		sessions:   sessions,
		limiter:    limiter,
		recorder:   recorder,
		logger:     logger,
	}
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config   *config.Config
	Sessions repository.SessionReader
	Metrics  *metrics.Metrics `optional:"true"`
	Logger   *slog.Logger
}

// New creates the backend client from config.
func New(params Params) (*Client, error) {
	if _, err := url.ParseRequestURI(params.Config.Backend.BaseURL); err != nil {
		return nil, errors.Wrapf(err, "invalid backend.baseUrl %q", params.Config.Backend.BaseURL)
	}

	var recorder Recorder
	if params.Metrics != nil {
		recorder = params.Metrics
	}

	return NewClient(Options{
		BaseURL:   params.Config.Backend.BaseURL,
		Timeout:   params.Config.Backend.Timeout,
		RateLimit: params.Config.Backend.RateLimit,
		Burst:     params.Config.Backend.Burst,
	}, params.Sessions, recorder, params.Logger), nil
}

// do sends one request and returns the body with any data envelope removed.
func (c *Client) do(ctx context.Context, method, route string, query url.Values, payload any) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, domainerrors.NewNetworkError(err, 0, "", route)
		}
	}

	req, err := c.newRequest(ctx, method, route, query, payload)
	if err != nil {
		return nil, err
	}

	label := routeLabel(route)
	logger := deliverycontext.Logger(ctx, c.logger).With(
		slog.String("method", method),
		slog.String("route", route),
		slog.String("request_id", req.Header.Get(deliverycontext.HeaderXRequestID)),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recorder.ObserveRequest(method, label, outcomeUnreachable, time.Since(start))
		logger.Debug("backend unreachable", slog.Any("error", err))

		return nil, domainerrors.NewNetworkError(err, 0, "", route)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	elapsed := time.Since(start)
	if err != nil {
		c.recorder.ObserveRequest(method, label, outcomeUnreachable, elapsed)

		return nil, domainerrors.NewNetworkError(err, resp.StatusCode, "", route)
	}
	if len(body) > maxResponseBytes {
		c.recorder.ObserveRequest(method, label, outcomeRejected, elapsed)
		logger.Warn("backend response too large", slog.Int("limit_bytes", maxResponseBytes))

		return nil, domainerrors.NewNetworkError(
			errors.Errorf("response body exceeds %d bytes", maxResponseBytes),
			resp.StatusCode, "", route,
		)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.recorder.ObserveRequest(method, label, outcomeRejected, elapsed)
		logger.Debug("backend rejected request", slog.Int("status", resp.StatusCode))

		return nil, domainerrors.NewNetworkError(nil, resp.StatusCode, errorMessage(body), route)
	}

	c.recorder.ObserveRequest(method, label, outcomeOK, elapsed)
	logger.Debug("backend request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", elapsed),
	)

	return unwrapData(body), nil
}

// routeLabel replaces the order id segment so metric labels stay bounded.
func routeLabel(route string) string {
	segments := strings.Split(route, "/")
	for i := 1; i < len(segments)-1; i++ {
		if segments[i] == "orders" && segments[i+1] != "" {
			segments[i+1] = ":id"
		}
	}

	return strings.Join(segments, "/")
}

func (c *Client) newRequest(ctx context.Context, method, route string, query url.Values, payload any) (*http.Request, error) {
	endpoint := c.baseURL + route
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s payload", route)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", route)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := deliverycontext.RequestIDFrom(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)

	// A store failure degrades to an anonymous request; the backend answers 401.
	session, err := c.sessions.Load(ctx)
	if err != nil {
		c.logger.Warn("session unavailable, sending request without token",
			slog.String("route", route),
			slog.Any("error", err),
		)
	}
	if session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	return req, nil
}
