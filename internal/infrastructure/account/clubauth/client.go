package clubauth

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/dajarony/club-deportivo-quito/internal/domain/user"
	"github.com/dajarony/club-deportivo-quito/internal/platform/cache"
	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/platform/resilience"
	"github.com/dajarony/club-deportivo-quito/internal/usecase"
)

// Client verifies access tokens against the club auth service's
// introspection endpoint. Verified principals are cached briefly so a
// burst of requests with the same token costs one upstream call.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	breaker       *resilience.CircuitBreaker
	tokenCache    *cache.Store
	logger        *logging.Logger
}

func NewClient(httpClient *http.Client, baseURL, introspectPath string, breakerCfg resilience.CircuitBreakerConfig, tokenCache *cache.Store, logger *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	breakerCfg = resilience.NormalizeCircuitBreakerConfig(breakerCfg)
	var breaker *resilience.CircuitBreaker
	if breakerCfg.Enabled {
		breaker = resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq)
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(baseURL, introspectPath),
		breaker:       breaker,
		tokenCache:    tokenCache,
		logger:        logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, crerr.Wrap(usecase.ErrUnauthorized, "token is required")
	}

	cacheKey := "introspect:" + hashToken(token)
	if c.tokenCache != nil {
		if cached, ok := c.tokenCache.Get(ctx, cacheKey); ok {
			if principal, ok := cached.(user.Principal); ok {
				return principal, nil
			}
		}
	}

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return user.Principal{}, crerr.Wrap(usecase.ErrDependencyUnavailable, "auth introspection circuit open")
		}
	}

	principal, err := c.introspect(ctx, token)
	if err != nil {
		if c.breaker != nil {
			if crerr.Is(err, usecase.ErrDependencyUnavailable) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return user.Principal{}, err
	}
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}

	if c.tokenCache != nil {
		c.tokenCache.Set(ctx, cacheKey, principal)
	}
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "request introspection: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, crerr.Wrap(usecase.ErrUnauthorized, "introspection denied")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "read introspect response")
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.logger.WarnContext(ctx, "auth introspection upstream failure", "status_code", resp.StatusCode)
		return user.Principal{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "introspection failed with status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return user.Principal{}, crerr.Newf("introspection failed with status %d", resp.StatusCode)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, crerr.Wrap(err, "unmarshal introspect response")
	}

	if !decoded.Active {
		return user.Principal{}, crerr.Wrap(usecase.ErrUnauthorized, "inactive token")
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, crerr.New("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID:   decoded.UserID,
		Username: decoded.Username,
		Role:     user.ParseRole(decoded.Role),
		Active:   decoded.Active,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active   bool   `json:"active"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
