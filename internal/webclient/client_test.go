package webclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dajarony/club-deportivo-quito/internal/platform/logging"
	"github.com/dajarony/club-deportivo-quito/internal/platform/resilience"
)

func newTestClient(t *testing.T, baseURL string, mockFallback bool) *Client {
	t.Helper()
	return NewClient(ClientConfig{
		BaseURL:      baseURL,
		Timeout:      2 * time.Second,
		MockFallback: mockFallback,
		Logger:       logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled: false,
		},
	})
}

func TestGetNews_DecodesArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/news", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("limit"))
		require.Equal(t, "true", r.URL.Query().Get("published"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"count":2,"articles":[` +
			`{"id":"n1","title":"Victoria en casa","slug":"victoria-en-casa","excerpt":"Resumen","image":"/img/n1.jpg","publishDate":"2025-02-12T00:00:00Z"},` +
			`{"id":"n2","title":"Nuevo fichaje","slug":"nuevo-fichaje","excerpt":"Resumen","image":"/img/n2.jpg","publishDate":"2025-02-08T00:00:00Z"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, false)
	articles, err := client.GetNews(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	require.Equal(t, "Victoria en casa", articles[0].Title)
}

func TestGetNews_FallsBackToMocksOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, true)
	articles, err := client.GetNews(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	require.Equal(t, "Importante victoria frente a Emelec en casa", articles[0].Title)
}

func TestGetNews_FallsBackToMocksOnDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, true)
	articles, err := client.GetNews(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, articles, 2)
}

func TestGetNews_SurfacesErrorWithoutFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, false)
	_, err := client.GetNews(context.Background(), 2)
	require.Error(t, err)
}

func TestGetResults_NetworkFailureFallsBack(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", true)
	results, err := client.GetResults(context.Background(), ListOptions{Competition: "Liga Pro", Limit: 2})
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, item := range results {
		require.Equal(t, "Liga Pro", item.Competition)
	}
}

func TestGetFixtures_DecodesFixtures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/matches/fixtures", r.URL.Path)
		require.Equal(t, "Liga Pro", r.URL.Query().Get("competition"))
		_, _ = w.Write([]byte(`{"success":true,"count":1,"fixtures":[` +
			`{"id":"m1","competition":"Liga Pro","matchday":5,"date":"2025-03-17T19:00:00Z","venue":"Estadio Olímpico Atahualpa","homeTeam":"CD Quito","awayTeam":"Independiente","ticketUrl":"/entradas/m1"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, false)
	fixtures, err := client.GetFixtures(context.Background(), ListOptions{Competition: "Liga Pro"})
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	require.Equal(t, "/entradas/m1", fixtures[0].TicketURL)
}

func TestGetLiveMatch_NilWhenNothingLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"count":0,"matches":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, true)
	live, err := client.GetLiveMatch(context.Background())
	require.NoError(t, err)
	require.Nil(t, live)
}

func TestGetLiveMatch_ReturnsFirstMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"count":1,"matches":[` +
			`{"id":"m9","competition":"Liga Pro","homeTeam":"CD Quito","awayTeam":"Aucas","homeScore":2,"awayScore":1,"minute":71,"status":"LIVE"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, false)
	live, err := client.GetLiveMatch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, live)
	require.Equal(t, 71, live.Minute)
}

func TestSubscribeNewsletter_InvalidEmailNeverFallsBack(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", true)
	_, err := client.SubscribeNewsletter(context.Background(), "not-an-email")
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSubscribeNewsletter_TransportFailureSurfaces(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", true)
	_, err := client.SubscribeNewsletter(context.Background(), "hincha@example.com")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSubscribeNewsletter_ServerMessagePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/newsletter/subscribe", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"message":"subscription created, check your inbox to confirm"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, false)
	message, err := client.SubscribeNewsletter(context.Background(), "hincha@example.com")
	require.NoError(t, err)
	require.Equal(t, "subscription created, check your inbox to confirm", message)
}

func TestSubscribeNewsletter_ConflictMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"email is already subscribed"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, false)
	_, err := client.SubscribeNewsletter(context.Background(), "hincha@example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "email is already subscribed")
}

func TestCircuitBreaker_OpensAfterRepeatedFailures(t *testing.T) {
	client := NewClient(ClientConfig{
		BaseURL:      "http://127.0.0.1:1",
		Timeout:      200 * time.Millisecond,
		MockFallback: false,
		Logger:       logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	ctx := context.Background()
	_, err := client.GetSponsors(ctx)
	require.Error(t, err)
	_, err = client.GetSponsors(ctx)
	require.Error(t, err)

	_, err = client.GetSponsors(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "temporarily unavailable")
}
