package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"outreach/internal/api"
	"outreach/internal/api/handler/v1handler"
	"outreach/pkg/logger"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestServer(t *testing.T) *http.Server {
	t.Helper()
	srv, _ := newTestServerWithKey(t)

	return srv
}

func newTestServerWithKey(t *testing.T) (*http.Server, *rsa.PrivateKey) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	srv, err := api.NewServer(api.Deps{
		MeterProvider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader())),
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
		},
		Addr:           ":0",
		RequestTimeout: time.Second,
		MetricsPath:    "/metrics",
		MaxBodyBytes:   256,
	})
	require.NoError(t, err)

	return srv, priv
}

func bearer(t *testing.T, priv *rsa.PrivateKey) string {
	t.Helper()
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(priv)
	require.NoError(t, err)

	return "Bearer " + signed
}

func serve(srv *http.Server, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	return rec
}

func TestNewServer_Routes(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodGet, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = serve(srv, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(srv, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(srv, http.MethodGet, "/debug/pprof/")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(srv, http.MethodGet, "/v1/docs/")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_V1RequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodGet, "/v1/campaigns")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNewServer_V1UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodGet, "/v1/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"no route for GET /v1/nope"}`, rec.Body.String())
}

func TestNewServer_V1BodyLimit(t *testing.T) {
	srv, priv := newTestServerWithKey(t)

	body := `{"title":"` + strings.Repeat("x", 300) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/campaigns", strings.NewReader(body))
	req.Header.Set("Authorization", bearer(t, priv))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"request body exceeds 256 bytes"}`, rec.Body.String())
}

func TestNewServer_V1InvalidCampaignID(t *testing.T) {
	srv, priv := newTestServerWithKey(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns/not-a-uuid", nil)
	req.Header.Set("Authorization", bearer(t, priv))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"invalid path parameter \"campaignID\""}`, rec.Body.String())
}

func TestNewServer_InvalidKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{
		MeterProvider: sdkmetric.NewMeterProvider(),
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "nope"},
		MetricsPath:       "/metrics",
	})
	require.Error(t, err)
}
