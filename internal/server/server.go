// Package server exposes the flow registry over HTTP. Each flow is a
// plain request/response endpoint: JSON input contract in, JSON output
// contract out.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-flow/internal/flow"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type Server struct {
	addr     string
	registry flow.Registry
	logger   logger.Logger
}

// New constructs the API server.
func New(addr string, registry flow.Registry, log logger.Logger) *Server {
	return &Server{addr: addr, registry: registry, logger: log}
}

// Handler returns the route table. Split out from Start so tests can
// drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/flows", s.handleListFlows)
	mux.HandleFunc("POST /api/v1/flows/{name}", s.handleRunFlow)
	return mux
}

// Start serves until the context is canceled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleListFlows(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.List())
}

func (s *Server) handleRunFlow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Warn(ctx, "[%s] read body for flow %s: %v", requestID, name, err)
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	started := time.Now()
	out, err := s.registry.Run(ctx, name, json.RawMessage(body))
	if err != nil {
		status := statusFor(err)
		s.logger.Warn(ctx, "[%s] flow %s failed (%d): %v", requestID, name, status, err)
		writeError(w, status, err.Error())
		return
	}

	s.logger.Info(ctx, "[%s] flow %s completed in %s", requestID, name, time.Since(started))
	writeJSON(w, http.StatusOK, out)
}

// statusFor maps flow errors onto the HTTP surface: bad requests stay
// the caller's fault, contract violations blame the upstream model.
func statusFor(err error) int {
	var inputErr *flow.InputError
	var contractErr *flow.ContractError

	switch {
	case errors.Is(err, flow.ErrUnknownFlow):
		return http.StatusNotFound
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &contractErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
