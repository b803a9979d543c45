package odata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/shaiso/kamermoties/internal/telemetry"
)

const (
	// DefaultBaseURL — OData v4 endpoint gegevensmagazijn Tweede Kamer.
	DefaultBaseURL = "https://gegevensmagazijn.tweedekamer.nl/OData/v4/2.0"

	defaultTimeout  = 30 * time.Second
	maxResponseBody = 64 * 1024 * 1024 // 64 MB
)

// Config — конфигурация Client.
type Config struct {
	// BaseURL — корень OData API. По умолчанию DefaultBaseURL.
	BaseURL string

	// Timeout — таймаут одного запроса. По умолчанию 30 секунд.
	Timeout time.Duration

	// HTTPClient — опционально, для тестов.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Client выполняет GET-запросы к OData API.
//
// Одна попытка на вызов, без retry и backoff.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient создаёт новый Client.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Response — разобранный ответ OData.
type Response struct {
	body gjson.Result
}

// Records возвращает записи массива value. Пустой ответ даёт nil.
func (r *Response) Records() []Record {
	return Record{res: r.body}.List("value")
}

// URL возвращает полный адрес запроса к сущности.
func (c *Client) URL(entity string, q Query) string {
	u := c.baseURL + "/" + strings.TrimLeft(entity, "/")
	if params := q.Values(); len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// Fetch выполняет GET-запрос к сущности entity с параметрами q.
//
// Любая ошибка оборачивает ErrUnavailable и логируется.
func (c *Client) Fetch(ctx context.Context, entity string, q Query) (*Response, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "odata.Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("odata.entity", entity))

	logger := telemetry.WithEntity(telemetry.FromContext(ctx), entity)
	url := c.URL(entity, q)
	start := time.Now()

	resp, outcome, err := c.do(ctx, url)
	telemetry.ObserveUpstream(entity, outcome, time.Since(start))

	if err != nil {
		logger.Error("odata request failed", "url", url, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	logger.Debug("odata request completed", "url", url, "duration", time.Since(start))
	return resp, nil
}

func (c *Client) do(ctx context.Context, url string) (*Response, string, error) {
	// Таймаут
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, telemetry.OutcomeError, fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, telemetry.OutcomeError, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, telemetry.OutcomeError, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, telemetry.OutcomeHTTPStatus, fmt.Errorf("%w: HTTP %d: %s", ErrUnavailable, resp.StatusCode, truncate(string(body), 200))
	}

	if !gjson.ValidBytes(body) {
		return nil, telemetry.OutcomeInvalidBody, fmt.Errorf("%w: response is not valid JSON", ErrUnavailable)
	}

	return &Response{body: gjson.ParseBytes(body)}, telemetry.OutcomeOK, nil
}

// truncate обрезает строку до указанной длины.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
