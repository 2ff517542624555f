package webclient

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/platform/resilience"
)

const defaultSubscribeSuccessMessage = "¡Gracias por suscribirte a nuestro newsletter!"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	// ErrInvalidEmail surfaces to the user verbatim, never masked by mocks.
	ErrInvalidEmail = crerr.New("correo electrónico no válido")
	// ErrUnavailable reports a transport failure on a write path.
	ErrUnavailable = crerr.New("el servicio no está disponible en este momento")

	errAPITransient = crerr.New("club api transient failure")
)

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Timeout        time.Duration
	MockFallback   bool
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client is the site's read/write facade over the public API. Read
// methods fall back to the fixed mock datasets on any failure when
// MockFallback is enabled; SubscribeNewsletter always surfaces errors.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	timeout        time.Duration
	mockFallback   bool
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		timeout:        timeout,
		mockFallback:   cfg.MockFallback,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) GetNews(ctx context.Context, limit int) ([]NewsItem, error) {
	if limit <= 0 {
		limit = 3
	}

	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))
	values.Set("published", "true")

	var envelope newsEnvelope
	if err := c.getJSON(ctx, "/v1/news", values, &envelope); err != nil {
		if c.mockFallback {
			c.logger.WarnContext(ctx, "news fetch failed, serving mock dataset", "error", err)
			return mockNews(limit), nil
		}
		return nil, err
	}
	return envelope.Articles, nil
}

func (c *Client) GetResults(ctx context.Context, opts ListOptions) ([]Result, error) {
	var envelope resultsEnvelope
	if err := c.getJSON(ctx, "/v1/matches/results", listOptionsValues(opts), &envelope); err != nil {
		if c.mockFallback {
			c.logger.WarnContext(ctx, "results fetch failed, serving mock dataset", "error", err)
			return mockResults(opts), nil
		}
		return nil, err
	}
	return envelope.Results, nil
}

func (c *Client) GetFixtures(ctx context.Context, opts ListOptions) ([]Fixture, error) {
	var envelope fixturesEnvelope
	if err := c.getJSON(ctx, "/v1/matches/fixtures", listOptionsValues(opts), &envelope); err != nil {
		if c.mockFallback {
			c.logger.WarnContext(ctx, "fixtures fetch failed, serving mock dataset", "error", err)
			return mockFixtures(opts), nil
		}
		return nil, err
	}
	return envelope.Fixtures, nil
}

// GetLiveMatch returns the first in-play match, or nil when nothing is live.
func (c *Client) GetLiveMatch(ctx context.Context) (*LiveMatch, error) {
	var envelope liveEnvelope
	if err := c.getJSON(ctx, "/v1/matches/live", nil, &envelope); err != nil {
		if c.mockFallback {
			c.logger.WarnContext(ctx, "live match fetch failed, serving mock dataset", "error", err)
			return mockLiveMatch(), nil
		}
		return nil, err
	}
	if len(envelope.Matches) == 0 {
		return nil, nil
	}
	item := envelope.Matches[0]
	return &item, nil
}

func (c *Client) GetSponsors(ctx context.Context) ([]Sponsor, error) {
	var envelope sponsorsEnvelope
	if err := c.getJSON(ctx, "/v1/sponsors", nil, &envelope); err != nil {
		if c.mockFallback {
			c.logger.WarnContext(ctx, "sponsors fetch failed, serving mock dataset", "error", err)
			return mockSponsors(), nil
		}
		return nil, err
	}
	return envelope.Sponsors, nil
}

// SubscribeNewsletter posts the signup and returns the confirmation
// message. Invalid email and transport failures both surface to the
// caller; there is no mock fallback on this path.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return "", ErrInvalidEmail
	}

	body, err := sonic.Marshal(map[string]string{"email": email})
	if err != nil {
		return "", crerr.Wrap(err, "marshal subscribe payload")
	}

	fullURL := c.baseURL + "/v1/newsletter/subscribe"
	c.logger.InfoContext(ctx, "newsletter subscribe request",
		"url", fullURL,
		"curl_preview", buildCurlPreview(fasthttp.MethodPost, fullURL, string(body)),
	)

	status, raw, err := c.execute(ctx, fasthttp.MethodPost, fullURL, body)
	if err != nil {
		c.logger.WarnContext(ctx, "newsletter subscribe failed", "error", err)
		return "", crerr.Wrap(ErrUnavailable, err.Error())
	}

	var envelope subscribeEnvelope
	if decodeErr := sonic.Unmarshal(raw, &envelope); decodeErr != nil && status/100 != 2 {
		return "", crerr.Wrapf(ErrUnavailable, "status=%d", status)
	}

	if status/100 != 2 {
		message := strings.TrimSpace(envelope.Message)
		if message == "" {
			return "", crerr.Wrapf(ErrUnavailable, "status=%d", status)
		}
		return "", crerr.New(message)
	}

	if strings.TrimSpace(envelope.Message) == "" {
		return defaultSubscribeSuccessMessage, nil
	}
	return envelope.Message, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "club api circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("club api temporarily unavailable: %w", err)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		_, raw, reqErr := c.execute(ctx, fasthttp.MethodGet, fullURL, nil)
		if c.circuitEnabled {
			if reqErr != nil && isTransient(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode api payload: %w", err)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, method, fullURL string, body []byte) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if len(body) > 0 {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.httpClient.DoTimeout(req, resp, timeout); err != nil {
		return 0, nil, fmt.Errorf("%w: %s %s: %v", errAPITransient, method, fullURL, err)
	}

	status := resp.StatusCode()
	raw := append([]byte(nil), resp.Body()...)

	if method == fasthttp.MethodGet {
		if status/100 != 2 {
			if isRetryableStatus(status) {
				return status, raw, fmt.Errorf("%w: status=%d url=%s", errAPITransient, status, fullURL)
			}
			return status, raw, fmt.Errorf("api status=%d url=%s", status, fullURL)
		}
	}
	return status, raw, nil
}

func listOptionsValues(opts ListOptions) url.Values {
	values := url.Values{}
	if opts.Competition != "" {
		values.Set("competition", opts.Competition)
	}
	if opts.Limit > 0 {
		values.Set("limit", strconv.Itoa(opts.Limit))
	}
	return values
}

func buildCurlPreview(method, fullURL, body string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("curl -X ")
	_, _ = buf.WriteString(method)
	_, _ = buf.WriteString(" '")
	_, _ = buf.WriteString(fullURL)
	_, _ = buf.WriteString("' -H 'Content-Type: application/json'")
	if body != "" {
		_, _ = buf.WriteString(" -d '")
		_, _ = buf.WriteString(body)
		_, _ = buf.WriteString("'")
	}
	return buf.String()
}

func isTransient(err error) bool {
	return err != nil && stderrors.Is(err, errAPITransient)
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusRequestTimeout ||
		status == fasthttp.StatusTooManyRequests ||
		status >= fasthttp.StatusInternalServerError
}
