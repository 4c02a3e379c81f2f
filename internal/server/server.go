// Package server provides the HTTP REST API for browsing and rescoring leads.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/leadscore/internal/db"
	"github.com/jonathan/leadscore/internal/scoring"
	"github.com/jonathan/leadscore/internal/types"
)

// Store is the persistence surface the handlers need. Satisfied by *db.DB.
type Store interface {
	UpsertJob(ctx context.Context, job *types.JobPosting) error
	GetJob(ctx context.Context, id string) (*types.JobPosting, error)
	ListJobs(ctx context.Context, filters db.JobFilters) ([]*types.JobPosting, error)
	SetManualOverride(ctx context.Context, id string) error
	ClearManualOverride(ctx context.Context, id string) error
	GetSettings(ctx context.Context) (*types.Settings, error)
	SaveSettings(ctx context.Context, settings *types.Settings) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	engine     *scoring.Engine
}

// Config holds server configuration
type Config struct {
	Addr        string
	DatabaseURL string
}

// New creates a new server instance connected to PostgreSQL.
func New(cfg Config, engine *scoring.Engine) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return newServer(cfg.Addr, database, engine), nil
}

// newServer wires the router; split from New so tests can inject a store.
func newServer(addr string, store Store, engine *scoring.Engine) *Server {
	s := &Server{store: store, engine: engine}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /score", s.handleScore)

	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("POST /jobs/{id}/rescore", s.handleRescoreJob)
	mux.HandleFunc("GET /jobs/{id}/proposal", s.handleJobProposal)
	mux.HandleFunc("POST /jobs/{id}/override", s.handleSetOverride)
	mux.HandleFunc("DELETE /jobs/{id}/override", s.handleClearOverride)

	mux.HandleFunc("GET /settings", s.handleGetSettings)
	mux.HandleFunc("PUT /settings", s.handleUpdateSettings)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if database, ok := s.store.(*db.DB); ok {
		database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
