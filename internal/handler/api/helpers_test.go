//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"swiss-virtual-airline/internal/domain/flight"
	"swiss-virtual-airline/internal/domain/rewards"
	"swiss-virtual-airline/internal/domain/user"
	"swiss-virtual-airline/internal/handler"
	"swiss-virtual-airline/internal/handler/api"
	"swiss-virtual-airline/internal/handler/middleware"
	"swiss-virtual-airline/internal/infra/memstore"
	"swiss-virtual-airline/internal/pkg/clock"
	"swiss-virtual-airline/internal/pkg/config"
	"swiss-virtual-airline/internal/pkg/metrics"
	"swiss-virtual-airline/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full router against real in-memory stores. Only the
// Discord exchange is faked, via a stub identity provider.
type testEnv struct {
	engine   *gin.Engine
	cfg      config.Config
	clock    *clock.MockClock
	flights  *memstore.FlightStore
	bookings *memstore.BookingStore
	ledger   *memstore.RewardsStore
	sessions *memstore.SessionStore
	provider *stubIdentityProvider
}

type stubIdentityProvider struct {
	identity user.Identity
	err      error
}

func (s *stubIdentityProvider) Exchange(_ context.Context, _, _ string) (user.Identity, error) {
	return s.identity, s.err
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	policy := rewards.NewDefaultPolicy()
	mockClock := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	registry := prometheus.NewRegistry()
	m := metrics.New("test", registry)
	admins := usecase.NewAllowListAdminPolicy(cfg.Rewards)

	env := &testEnv{
		cfg:      cfg,
		clock:    mockClock,
		flights:  memstore.NewFlightStore(),
		bookings: memstore.NewBookingStore(),
		ledger:   memstore.NewRewardsStore(policy),
		sessions: memstore.NewSessionStore(cfg.Session.TTL),
		provider: &stubIdentityProvider{},
	}

	authUC := usecase.NewAuthUseCase(env.provider, env.sessions, mockClock)
	departureUC, err := usecase.NewDepartureUseCase(env.flights, cfg.Departures, mockClock)
	require.NoError(t, err)
	bookingUC := usecase.NewBookingUseCase(env.bookings, env.flights, admins, cfg.Bot, mockClock, m)
	rewardsUC := usecase.NewRewardsUseCase(env.ledger, env.bookings, policy, admins, cfg.Rewards, mockClock, m)

	handlers := handler.Handlers{
		Auth:      api.NewAuthHandler(authUC),
		Departure: api.NewDepartureHandler(departureUC),
		Booking:   api.NewBookingHandler(bookingUC),
		Bot:       api.NewBotHandler(bookingUC),
		Rewards:   api.NewRewardsHandler(rewardsUC),
	}

	env.engine = gin.New()
	handler.NewRouter(env.engine, cfg, handlers, middleware.NewAuthMiddleware(authUC), m, registry)
	return env
}

// login issues a session directly, skipping the OAuth exchange.
func (e *testEnv) login(t *testing.T, identity user.Identity) string {
	t.Helper()
	token, err := e.sessions.Issue(identity, e.clock.Now())
	require.NoError(t, err)
	return token
}

func (e *testEnv) addFlight(number, destination string) {
	e.flights.Append(flight.Record{
		FlightNumber: number,
		Destination:  destination,
		Status:       "On Time",
	})
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
