// Package httpapi exposes the supervisor to the frontend collaborator over
// a small JSON API: POST /v1/route computes a decision for raw session
// metadata, GET /v1/routes lists the resolvable routes.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sperrin/voiceroute/internal/adapters/pipeline"
	"github.com/sperrin/voiceroute/internal/application"
	"github.com/sperrin/voiceroute/internal/domain"
	"go.uber.org/zap"
)

const maxMetadataBytes = 1 << 16

type Server struct {
	supervisor *application.Supervisor
	profiles   *pipeline.Builder
	logger     *zap.Logger
	server     *http.Server
}

func NewServer(supervisor *application.Supervisor, profiles *pipeline.Builder, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		supervisor: supervisor,
		profiles:   profiles,
		logger:     logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/route", s.handleRoute)
	mux.HandleFunc("/v1/routes", s.handleRoutes)
	mux.HandleFunc("/healthz", s.handleHealth)
	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler exposes the mux for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	s.logger.Info("http api listening", zap.String("addr", listener.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http api: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

type routeResponse struct {
	Route       string             `json:"route"`
	Mode        string             `json:"mode"`
	Language    string             `json:"language"`
	SessionID   string             `json:"session_id"`
	Instruction string             `json:"instruction"`
	CreatedAt   time.Time          `json:"created_at"`
	Pipeline    pipeline.Profile   `json:"pipeline"`
	Metadata    domain.RawMetadata `json:"metadata"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxMetadataBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body")
		return
	}

	var raw domain.RawMetadata
	if len(body) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			writeError(w, http.StatusBadRequest, "metadata is not valid JSON")
			return
		}
	}

	decision, err := s.supervisor.Route(r.Context(), raw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLanguage) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("route session", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "route session")
		return
	}

	writeJSON(w, http.StatusOK, routeResponse{
		Route:       decision.Key.String(),
		Mode:        string(decision.Key.Mode),
		Language:    string(decision.Key.Language),
		SessionID:   decision.Metadata.SessionID,
		Instruction: string(decision.Instruction),
		CreatedAt:   decision.CreatedAt,
		Pipeline:    s.profiles.Build(decision),
		Metadata:    raw,
	})
}

type routesResponse struct {
	Routes []routeSummary `json:"routes"`
}

type routeSummary struct {
	Route      string `json:"route"`
	Mode       string `json:"mode"`
	Language   string `json:"language"`
	Persona    string `json:"persona"`
	LocaleName string `json:"locale"`
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	summaries := s.supervisor.Summaries()
	resp := routesResponse{Routes: make([]routeSummary, 0, len(summaries))}
	for _, summary := range summaries {
		resp.Routes = append(resp.Routes, routeSummary{
			Route:      summary.Route.String(),
			Mode:       string(summary.Route.Mode),
			Language:   string(summary.Route.Language),
			Persona:    summary.Persona,
			LocaleName: summary.LocaleName,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
