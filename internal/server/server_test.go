package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brandkit/brandkit/internal/config"
	"github.com/brandkit/brandkit/internal/core"
	"github.com/brandkit/brandkit/internal/server/handlers"
)

type stubDomains struct {
	outcome *core.QueryOutcome
	err     error
}

func (s *stubDomains) Check(ctx context.Context, input string) (*core.QueryOutcome, error) {
	return s.outcome, s.err
}

type stubHandles struct {
	results []core.PlatformResult
	gotKeys []string
}

func (s *stubHandles) CheckHandles(ctx context.Context, username string, platformKeys []string) []core.PlatformResult {
	s.gotKeys = platformKeys
	return s.results
}

func newTestServer(api *handlers.API) *Server {
	return New(config.ServerConfig{Host: "localhost", Port: 0}, api)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(&handlers.API{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "healthy")
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestDomainEndpoint(t *testing.T) {
	api := &handlers.API{
		Domains: &stubDomains{outcome: &core.QueryOutcome{
			Domain:    "brandkit.io",
			Available: true,
			Link:      "https://www.namecheap.com/domains/registration/results/?domain=brandkit.io",
		}},
	}
	srv := newTestServer(api)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/domains/brandkit.io", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome core.QueryOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	require.True(t, outcome.Available)
	require.Equal(t, "brandkit.io", outcome.Domain)
	require.NotEmpty(t, outcome.Link)
}

func TestDomainEndpointSurfacesIntegrationFailure(t *testing.T) {
	api := &handlers.API{
		Domains: &stubDomains{err: errors.New("registrar unreachable")},
	}
	srv := newTestServer(api)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/domains/brandkit.io", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "EXTERNAL_SERVICE_ERROR")
	require.NotContains(t, rec.Body.String(), `"available"`)
}

func TestUsernameEndpoint(t *testing.T) {
	handles := &stubHandles{results: []core.PlatformResult{
		{Platform: "github", Available: true},
		{Platform: "reddit", Available: false},
	}}
	srv := newTestServer(&handlers.API{Handles: handles})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/usernames/acme.com?platforms=github,reddit", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"github", "reddit"}, handles.gotKeys)

	var payload struct {
		Username string                `json:"username"`
		Results  []core.PlatformResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "acme", payload.Username)
	require.Len(t, payload.Results, 2)
}

func TestUsernameEndpointDefaultsToFullTable(t *testing.T) {
	handles := &stubHandles{}
	srv := newTestServer(&handlers.API{Handles: handles})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/usernames/alice", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, core.PlatformKeys(), handles.gotKeys)
}

func TestNotFoundEnvelope(t *testing.T) {
	srv := newTestServer(&handlers.API{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NOT_FOUND")
}
