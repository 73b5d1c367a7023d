// Package api serves the simulation over HTTP.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (admin control plane).
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/graceworks/steeple/internal/config"
	"github.com/graceworks/steeple/internal/engine"
	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/persistence"
)

// Server serves the game state over HTTP.
type Server struct {
	DB  *persistence.DB
	Cfg config.APIConfig

	// NewRand builds the random source a loaded game continues with.
	NewRand func() *entropy.Rand

	mu   sync.RWMutex
	game *engine.Game
	slot string

	httpSrv *http.Server
}

// NewServer wires a server around a running game.
func NewServer(g *engine.Game, db *persistence.DB, cfg config.APIConfig, slot string, newRand func() *entropy.Rand) *Server {
	return &Server{
		DB:      db,
		Cfg:     cfg,
		NewRand: newRand,
		game:    g,
		slot:    slot,
	}
}

// Game returns the current game instance.
func (s *Server) Game() *engine.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game
}

func (s *Server) currentSlot() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slot
}

// swapGame replaces the live game after a load.
func (s *Server) swapGame(g *engine.Game, slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = g
	s.slot = slot
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.corsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public read side.
		r.Get("/status", s.handleStatus)
		r.Get("/congregation", s.handleCongregation)
		r.Get("/members", s.handleMembers)
		r.Get("/staff", s.handleStaff)
		r.Get("/candidates", s.handleCandidates)
		r.Get("/positions", s.handlePositions)
		r.Get("/policies", s.handlePolicies)
		r.Get("/finances", s.handleFinances)
		r.Get("/finances/projection", s.handleProjection)
		r.Get("/events", s.handleEvents)
		r.Get("/news", s.handleNews)
		r.Get("/history", s.handleHistory)
		r.Get("/saves", s.handleSaves)

		// Admin control plane.
		r.Group(func(r chi.Router) {
			r.Use(s.adminOnly)
			r.Post("/week", s.handleProcessWeek)
			r.Post("/policy", s.handleSetPolicy)
			r.Post("/expenses", s.handleSetExpenses)
			r.Post("/staff/hire", s.handleHire)
			r.Post("/staff/fire", s.handleFire)
			r.Post("/staff/pass", s.handlePass)
			r.Post("/event/choice", s.handleChoice)
			r.Post("/save", s.handleSave)
			r.Post("/load", s.handleLoad)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf("%s:%d", s.Cfg.Host, s.Cfg.Port)
	s.httpSrv = &http.Server{Addr: addr, Handler: s.Router()}

	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.Cfg.AdminToken != "")
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// corsMiddleware allows the configured frontend origins.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	allowAll := false
	allowed := map[string]bool{}
	for _, o := range s.Cfg.CORSOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// adminOnly requires a valid bearer token. No token configured means the
// control plane is disabled entirely.
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Cfg.AdminToken == "" {
			writeError(w, http.StatusForbidden, "admin endpoints disabled (no admin token configured)")
			return
		}
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != s.Cfg.AdminToken {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeEngineError maps engine errors onto HTTP status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrNotFound), errors.Is(err, persistence.ErrNoSave):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrRejected):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
