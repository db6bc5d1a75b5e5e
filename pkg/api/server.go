package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tapforge/tapforge/pkg/api/handlers"
	"github.com/tapforge/tapforge/pkg/api/middleware"
	"github.com/tapforge/tapforge/pkg/game"
	"github.com/tapforge/tapforge/pkg/log"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port   int
	TLS    *TLSConfig
	Engine *game.Engine
}

// NewAPIServer creates a new http.Server exposing the game engine.
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORS)

	r.HandleFunc("/api/state", handlers.HandleGetState(opts.Engine)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/tap", handlers.HandleTap(opts.Engine)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/upgrades/{key}", handlers.HandlePurchaseUpgrade(opts.Engine)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/referrals", handlers.HandleAddReferral(opts.Engine)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/leaderboard", handlers.HandleGetLeaderboard(opts.Engine)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/events", handlers.HandleEvents(opts.Engine)).Methods(http.MethodGet)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: r,
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
