package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
)

const (
	// GreetingBody is the response body for GET /.
	GreetingBody = "Hello from Rust Cloud Run!"

	// HealthBody is the response body for GET /health.
	HealthBody = "OK"
)

var (
	ErrAlreadyListening = errors.New("server is already listening")
	ErrNotListening     = errors.New("server is not listening")
)

// Server serves the greeting and health endpoints over TCP.
type Server struct {
	server *http.Server
	logger *slog.Logger

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a server with the fixed route table.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger: logger.With("component", "api"),
	}

	mux := http.NewServeMux()
	// {$} restricts the root route to exactly "/"; other paths fall through to 404.
	mux.HandleFunc("GET /{$}", s.greeting)
	mux.HandleFunc("GET /health", s.health)

	s.server = &http.Server{Handler: mux}
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Listen binds a TCP listener on addr. A server binds at most once.
func (s *Server) Listen(addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return ErrAlreadyListening
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or nil before Listen succeeds.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections on the bound listener until it fails.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	if ln == nil {
		return ErrNotListening
	}
	return s.server.Serve(ln)
}

// ListenTCP binds addr and serves on it. Bind errors are returned before
// any request is accepted.
func (s *Server) ListenTCP(addr string) error {
	s.logger.Info("server starting", "addr", addr)
	if err := s.Listen(addr); err != nil {
		return err
	}
	s.logger.Info("server ready", "addr", s.Addr().String())
	return s.Serve()
}

// Close closes the listener and any open connections without draining.
func (s *Server) Close() error {
	err := s.server.Close()

	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	// Serve owns the listener once called; before that it is ours to close.
	if ln != nil {
		if cerr := ln.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) && err == nil {
			err = cerr
		}
	}
	return err
}

func (s *Server) greeting(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, GreetingBody)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, HealthBody)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
