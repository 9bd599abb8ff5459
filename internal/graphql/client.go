package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

// Header names set on every request.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderHash      = "HashSHA256"
)

type httpClient struct {
	client *utils.HTTPClient
	path   string
	token  string
	hasher *utils.Hasher
	ids    *utils.UUIDGenerator

	dispatcher *adapter.Dispatcher
	logger     *logger.Logger
}

// NewClient constructs the HTTP implementation of [Client]. It normalises
// adapterCfg.HTTPAddress, strips an optional "Bearer " scheme from the
// token and keys the HashSHA256 hasher with appCfg.HashKey (no header when
// empty).
func NewClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, dispatcher *adapter.Dispatcher, log *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	path := adapterCfg.GraphQLPath
	if path == "" {
		path = config.DefaultGraphQLPath
	}

	return &httpClient{
		client:     utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		path:       path,
		token:      utils.ParseBearerToken(adapterCfg.Token),
		hasher:     utils.NewHasher(appCfg.HashKey),
		ids:        utils.NewUUIDGenerator(),
		dispatcher: dispatcher,
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Execute implements [Client]. The request id is taken from ctx
// ([utils.GetRequestIDFromContext]) or generated, and its logger is attached
// to the context handed to the adapters.
func (c *httpClient) Execute(ctx context.Context, op adapter.Operation) (adapter.Response, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = c.ids.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}
	log := c.logger.ForOperation(requestID, op.Name)
	ctx = log.WithContext(ctx)

	cycle := c.dispatcher.Begin(op)
	out, err := cycle.Forward(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "httpClient.Execute").Msg("operation not sent")
		return adapter.Response{}, fmt.Errorf("forward %s: %w", op.Name, err)
	}

	body, err := json.Marshal(out)
	if err != nil {
		cycle.Abort()
		return adapter.Response{}, fmt.Errorf("encode %s: %w", op.Name, err)
	}

	start := time.Now()
	resp, err := c.request(ctx, requestID, body).Post(c.path)
	if err != nil {
		cycle.Abort()
		return adapter.Response{}, fmt.Errorf("%s request: %w", op.Name, err)
	}
	log.Debug().
		Str("func", "httpClient.Execute").
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("response received")

	if err = mapHTTPError(resp); err != nil {
		cycle.Abort()
		return adapter.Response{}, err
	}

	var raw adapter.Response
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		cycle.Abort()
		return adapter.Response{}, fmt.Errorf("decode %s response: %w", op.Name, err)
	}

	mapped, err := cycle.Map(ctx, raw)
	if err != nil {
		return adapter.Response{}, err
	}
	if len(mapped.Errors) > 0 {
		return mapped, fmt.Errorf("%w: %s", ErrGraphQL, mapped.ErrorMessage())
	}

	return mapped, nil
}

func (c *httpClient) request(ctx context.Context, requestID string, body []byte) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID).
		SetBody(body)
	if c.token != "" {
		req.SetAuthToken(c.token)
	}
	if c.hasher != nil {
		req.SetHeader(HeaderHash, c.hasher.HexSum(body))
	}
	return req
}
