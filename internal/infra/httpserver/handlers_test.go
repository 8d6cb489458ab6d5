package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imharvol/bog-utils-bot/internal/config"
	"github.com/imharvol/bog-utils-bot/internal/domain"
)

type stubSubscriptionStore struct {
	subs []domain.Subscription
	err  error
}

func (s *stubSubscriptionStore) Subscribe(context.Context, domain.Subscription) error   { return nil }
func (s *stubSubscriptionStore) Unsubscribe(context.Context, domain.Subscription) error { return nil }
func (s *stubSubscriptionStore) ListSubscriptions(context.Context, int64) ([]domain.Subscription, error) {
	return s.subs, s.err
}
func (s *stubSubscriptionStore) MatchSubscribers(context.Context, string, string) ([]int64, error) {
	return nil, nil
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, HealthHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestLoginHandlerIssuesToken(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login?userId=42", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, LoginHandler(cfg)(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	token, err := jwt.Parse(body["token"], func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "42", sub)
}

func TestListSubscriptionsHandler(t *testing.T) {
	store := &stubSubscriptionStore{subs: []domain.Subscription{
		{UserID: 42, EventName: "OrderExecuted", Address: "0xabc"},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("42")

	require.NoError(t, ListSubscriptionsHandler(store)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OrderExecuted")
}

func TestListSubscriptionsHandlerRejectsBadUserID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("not-a-number")

	require.NoError(t, ListSubscriptionsHandler(&stubSubscriptionStore{})(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
