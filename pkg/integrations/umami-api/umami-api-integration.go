package umamiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Umami/configs"
	"droscher.com/Umami/pkg/normalize"
	"droscher.com/Umami/pkg/query"
)

const IntegrationName = "umami_api"

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	errMalformedEnvelope  = errors.New("malformed response envelope")
)

type UmamiAPIIntegration struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	logger    *zap.Logger
}

func NewUmamiAPIIntegration(conf configs.Catalog, logger *zap.Logger) *UmamiAPIIntegration {
	return &UmamiAPIIntegration{
		baseURL:   conf.BaseURL,
		timeout:   conf.Timeout,
		userAgent: conf.UserAgent,
		logger:    logger,
	}
}

// envelope is the {data, pagination} wrapper every catalog endpoint responds with.
type envelope struct {
	Data       json.RawMessage  `json:"data"`
	Pagination normalize.Record `json:"pagination"`
}

// fetch performs a single GET for q. Any failure, including a body that cannot be decoded,
// is reported as ErrCatalogUnavailable and no envelope is returned.
func (u *UmamiAPIIntegration) fetch(ctx context.Context, q query.Query) (*envelope, error) {
	target := q.URL(u.baseURL)

	parsed, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(parsed.Hostname()),
		colly.UserAgent(u.userAgent),
		colly.StdlibContext(ctx),
	)
	if u.timeout > 0 {
		collector.SetRequestTimeout(u.timeout)
	}

	var (
		errs   error
		result *envelope
	)

	collector.OnRequest(func(request *colly.Request) {
		request.Headers.Set("Accept", "application/json")
	})

	collector.OnResponse(func(response *colly.Response) {
		decoded, err := decodeEnvelope(response.Body)
		if multierr.AppendInto(&errs, err) {
			return
		}

		result = decoded
	})

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("catalog request failed",
			zap.String("url", target), zap.Int("status", response.StatusCode), zap.Error(err))
	})

	multierr.AppendInto(&errs, collector.Visit(target))

	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, errs)
	}

	if result == nil {
		return nil, fmt.Errorf("%w: no response from %s", ErrCatalogUnavailable, target)
	}

	return result, nil
}

func decodeEnvelope(body []byte) (*envelope, error) {
	var decoded envelope

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	if err := decoder.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedEnvelope, err)
	}

	if len(decoded.Data) == 0 || bytes.Equal(decoded.Data, []byte("null")) {
		return nil, fmt.Errorf("%w: missing data", errMalformedEnvelope)
	}

	return &decoded, nil
}

func decodeData[T any](data json.RawMessage) (T, error) {
	var decoded T

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	if err := decoder.Decode(&decoded); err != nil {
		var zero T

		return zero, fmt.Errorf("%w: %w: %w", ErrCatalogUnavailable, errMalformedEnvelope, err)
	}

	return decoded, nil
}
