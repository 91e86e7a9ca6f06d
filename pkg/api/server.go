// Package api exposes the HTTP surface: message ingress, run inspection
// and cancellation, user settings, triggers, and health probes.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/crypto"
	"github.com/conductorhq/conductor/pkg/database"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client
	cipher   *crypto.Cipher

	channels *services.ChannelService
	runs     *services.RunService
	steps    *services.StepService
	messages *services.MessageService
	settings *services.SettingsService
	triggers *services.TriggerService

	queue      *queue.Queue
	workerPool *queue.WorkerPool

	httpServer *http.Server
}

// NewServer creates the API server with its service layer.
func NewServer(cfg *config.Config, dbClient *database.Client, q *queue.Queue, pool *queue.WorkerPool, cipher *crypto.Cipher) *Server {
	return &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		cipher:     cipher,
		channels:   services.NewChannelService(dbClient.Client),
		runs:       services.NewRunService(dbClient.Client),
		steps:      services.NewStepService(dbClient.Client),
		messages:   services.NewMessageService(dbClient.Client),
		settings:   services.NewSettingsService(dbClient.Client),
		triggers:   services.NewTriggerService(dbClient.Client),
		queue:      q,
		workerPool: pool,
	}
}

// routes builds the gin engine with all middlewares and endpoints.
func (s *Server) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ready", s.readyHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/channels/:id/messages", s.postChannelMessage)
		v1.POST("/messages", s.postMessage)

		v1.GET("/runs", s.listRuns)
		v1.GET("/runs/:id", s.getRun)
		v1.GET("/runs/:id/steps", s.listRunSteps)
		v1.POST("/runs/:id/cancel", s.cancelRun)

		v1.GET("/users/:id/settings", s.getSettings)
		v1.PUT("/users/:id/settings", s.putSettings)

		v1.GET("/triggers", s.listTriggers)
		v1.POST("/triggers", s.createTrigger)
	}

	return r
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves on an already-bound listener. Tests use this
// to run on an ephemeral port they can discover.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
