package venueapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/timbrist/backend-internship-2025/internal/core/domain"
	"github.com/timbrist/backend-internship-2025/internal/pkg/metrics"
)

// SlugPlaceholder is replaced by the escaped venue slug in Config.BaseURL.
const SlugPlaceholder = "{venue_slug}"

const (
	defaultTimeout = 5 * time.Second
	defaultBackoff = 100 * time.Millisecond
	maxBodyBytes   = 1 << 20

	documentStatic  = "static"
	documentDynamic = "dynamic"
)

// Config captures the settings for talking to the venue data provider.
type Config struct {
	// BaseURL must contain SlugPlaceholder, e.g.
	// https://example.com/venues/{venue_slug}. Documents are fetched from
	// BaseURL + "/static" and BaseURL + "/dynamic".
	BaseURL string
	// Timeout bounds a whole FetchVenue call, retries included.
	Timeout time.Duration
	// Retries is the number of extra attempts after a transport failure or
	// a 5xx response. Other statuses are never retried.
	Retries int
	// Backoff is the delay before the first retry, multiplied by the attempt
	// number for later ones.
	Backoff time.Duration
}

// Client implements ports.VenueGateway over HTTP.
type Client struct {
	cfg      Config
	http     *http.Client
	validate *validator.Validate
	log      zerolog.Logger
}

// NewClient validates cfg and returns a Client. A nil httpClient falls back
// to http.DefaultClient.
func NewClient(cfg Config, httpClient *http.Client, log zerolog.Logger) (*Client, error) {
	if !strings.Contains(cfg.BaseURL, SlugPlaceholder) {
		return nil, fmt.Errorf("venueapi: base url %q has no %s placeholder", cfg.BaseURL, SlugPlaceholder)
	}
	if _, err := url.Parse(strings.ReplaceAll(cfg.BaseURL, SlugPlaceholder, "venue")); err != nil {
		return nil, fmt.Errorf("venueapi: parse base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		cfg:      cfg,
		http:     httpClient,
		validate: validator.New(),
		log:      log,
	}, nil
}

// FetchVenue fetches the static and dynamic documents concurrently and
// assembles the venue. Every failure wraps domain.ErrVenueNotFound.
func (c *Client) FetchVenue(ctx context.Context, venueSlug string) (*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var (
		static  staticDocument
		dynamic dynamicDocument
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.fetchDocument(gctx, venueSlug, documentStatic, &static) })
	g.Go(func() error { return c.fetchDocument(gctx, venueSlug, documentDynamic, &dynamic) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch venue %q: %w", venueSlug, err)
	}

	location := static.location()
	if !location.Valid() {
		return nil, fmt.Errorf("fetch venue %q: %w: coordinates out of range %v",
			venueSlug, domain.ErrVenueNotFound, static.VenueRaw.Location.Coordinates)
	}

	return &domain.Venue{
		Slug:          venueSlug,
		Location:      location,
		DeliverySpecs: dynamic.deliverySpecs(),
	}, nil
}

// Ping reports whether the provider host answers HTTP at all. Any response
// status counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	u, err := url.Parse(strings.ReplaceAll(c.cfg.BaseURL, SlugPlaceholder, "venue"))
	if err != nil {
		return err
	}
	root := url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, root.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("venue provider unreachable: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	return resp.Body.Close()
}

func (c *Client) documentURL(venueSlug, document string) string {
	return strings.ReplaceAll(c.cfg.BaseURL, SlugPlaceholder, url.PathEscape(venueSlug)) + "/" + document
}

// fetchDocument downloads, decodes and validates one document into dst.
func (c *Client) fetchDocument(ctx context.Context, venueSlug, document string, dst any) error {
	start := time.Now()
	result := "ok"
	defer func() {
		metrics.VenueFetchDuration.WithLabelValues(document, result).Observe(time.Since(start).Seconds())
	}()

	body, status, err := c.getWithRetry(ctx, c.documentURL(venueSlug, document), document)
	if err != nil {
		result = "error"
		return fmt.Errorf("%s document: %w: %v", document, domain.ErrVenueNotFound, err)
	}
	if status != http.StatusOK {
		result = "not_found"
		return fmt.Errorf("%s document: %w: provider returned %d", document, domain.ErrVenueNotFound, status)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		result = "malformed"
		return fmt.Errorf("%s document: %w: decode: %v", document, domain.ErrVenueNotFound, err)
	}
	if err := c.validate.Struct(dst); err != nil {
		result = "malformed"
		return fmt.Errorf("%s document: %w: %v", document, domain.ErrVenueNotFound, err)
	}
	return nil
}

// getWithRetry returns the body and status of the last attempt. Transport
// errors and 5xx responses are retried up to cfg.Retries times.
func (c *Client) getWithRetry(ctx context.Context, rawURL, document string) ([]byte, int, error) {
	var (
		body   []byte
		status int
		err    error
	)
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		if attempt > 0 {
			metrics.VenueFetchRetriesTotal.WithLabelValues(document).Inc()
			c.log.Debug().
				Str("document", document).
				Int("attempt", attempt).
				Int("status", status).
				AnErr("cause", err).
				Msg("retrying venue document fetch")

			timer := time.NewTimer(c.cfg.Backoff * time.Duration(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, 0, ctx.Err()
			case <-timer.C:
			}
		}

		body, status, err = c.get(ctx, rawURL)
		if !retryable(status, err) || ctx.Err() != nil {
			break
		}
	}
	if err != nil {
		return nil, 0, err
	}
	return body, status, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, resp.StatusCode, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func retryable(status int, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	return status >= http.StatusInternalServerError
}
