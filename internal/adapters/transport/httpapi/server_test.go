package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sperrin/voiceroute/internal/adapters/pipeline"
	policytoml "github.com/sperrin/voiceroute/internal/adapters/policy/toml"
	"github.com/sperrin/voiceroute/internal/application"
	"github.com/sperrin/voiceroute/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, policy domain.RoutingPolicy) *Server {
	t.Helper()

	supervisor, err := application.NewSupervisor(policy, nil, nil)
	require.NoError(t, err)

	return NewServer(supervisor, pipeline.NewBuilder(policy.Pipeline), nil)
}

func TestRouteEndpointHappyPath(t *testing.T) {
	server := newTestServer(t, policytoml.DefaultPolicy())

	req := httptest.NewRequest(http.MethodPost, "/v1/route",
		strings.NewReader(`{"language":"hi","voice":"sarvam","mode":"support"}`))
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Route       string `json:"route"`
		SessionID   string `json:"session_id"`
		Instruction string `json:"instruction"`
		Pipeline    struct {
			STT struct {
				Language string `json:"language"`
			} `json:"stt"`
			TTS struct {
				Engine string `json:"engine"`
			} `json:"tts"`
		} `json:"pipeline"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "support_hi", resp.Route)
	assert.NotEmpty(t, resp.SessionID)
	assert.Contains(t, resp.Instruction, "Respond primarily in Hindi.")
	assert.Equal(t, "hi", resp.Pipeline.STT.Language)
	assert.Equal(t, "sarvam", resp.Pipeline.TTS.Engine)
}

func TestRouteEndpointUnknownModeDegradesToGeneral(t *testing.T) {
	server := newTestServer(t, policytoml.DefaultPolicy())

	req := httptest.NewRequest(http.MethodPost, "/v1/route",
		strings.NewReader(`{"language":"en","mode":"unknown"}`))
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"route":"general_en"`)
}

func TestRouteEndpointRejectsInvalidLanguage(t *testing.T) {
	policy := policytoml.DefaultPolicy()
	policy.Languages.Default = ""
	server := newTestServer(t, policy)

	req := httptest.NewRequest(http.MethodPost, "/v1/route",
		strings.NewReader(`{"mode":"sales"}`))
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "language")
}

func TestRouteEndpointRejectsMalformedJSON(t *testing.T) {
	server := newTestServer(t, policytoml.DefaultPolicy())

	req := httptest.NewRequest(http.MethodPost, "/v1/route", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouteEndpointRejectsGET(t *testing.T) {
	server := newTestServer(t, policytoml.DefaultPolicy())

	req := httptest.NewRequest(http.MethodGet, "/v1/route", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoutesEndpointListsAllRoutes(t *testing.T) {
	server := newTestServer(t, policytoml.DefaultPolicy())

	req := httptest.NewRequest(http.MethodGet, "/v1/routes", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Routes []struct {
			Route string `json:"route"`
		} `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Routes, 8)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t, policytoml.DefaultPolicy())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
