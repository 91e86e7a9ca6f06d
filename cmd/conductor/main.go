// Conductor orchestrator server — provides the HTTP API, runs the queue
// worker pool, and executes agent runs against the LLM.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/conductorhq/conductor/pkg/api"
	"github.com/conductorhq/conductor/pkg/cleanup"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/crypto"
	"github.com/conductorhq/conductor/pkg/database"
	"github.com/conductorhq/conductor/pkg/delivery"
	"github.com/conductorhq/conductor/pkg/engine"
	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/memwriter"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/scheduler"
	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/pkg/tools"
	"github.com/conductorhq/conductor/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// Parse command-line flags
	envFile := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to optional .env file")
	flag.Parse()

	// Load .env file before anything reads the environment
	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	slog.Info("Starting conductor",
		"version", version.GitCommit,
		"http_port", cfg.Server.Port,
		"pod_id", podID,
		"tenant_id", cfg.Server.TenantID,
		"agent_id", cfg.Server.AgentID)

	// 2. Initialize database (connects and applies migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	q := queue.New(dbClient.Client)

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, q, podID); err != nil {
		// Non-fatal: the periodic orphan scan covers whatever this missed
		slog.Error("Failed to clean up startup orphans", "error", err)
	}

	// 4. Domain services
	runsService := services.NewRunService(dbClient.Client)
	stepsService := services.NewStepService(dbClient.Client)
	messagesService := services.NewMessageService(dbClient.Client)
	memoriesService := services.NewMemoryService(dbClient.Client)
	channelsService := services.NewChannelService(dbClient.Client)
	triggersService := services.NewTriggerService(dbClient.Client)
	settingsService := services.NewSettingsService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Credential cipher. Optional: without a key, stored per-user LLM
	// keys cannot be sealed or opened and the memory writer skips.
	var cipher *crypto.Cipher
	if cfg.EncryptionKey != "" {
		cipher, err = crypto.NewFromHex(cfg.EncryptionKey)
		if err != nil {
			slog.Error("Failed to initialize encryption key", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("ENCRYPTION_KEY not set, per-user LLM keys are disabled")
	}

	// 6. LLM client, tool registry, and run engine
	llmClient := llm.NewOpenAIClient(&cfg.LLM)

	registry := tools.NewRegistry(tools.NewPolicyEngine())
	for _, tool := range tools.Builtins() {
		if err := registry.Register(tool); err != nil {
			slog.Error("Failed to register built-in tool", "tool", tool.Name, "error", err)
			os.Exit(1)
		}
	}

	publisher := events.NewPublisher(dbClient.DB())

	eng := engine.New(engine.Deps{
		Runs:     runsService,
		Steps:    stepsService,
		Messages: messagesService,
		Memories: memoriesService,
		Channels: channelsService,
		Triggers: triggersService,
		Queue:    q,
		LLM:      llmClient,
		Tools:    registry,
		Events:   publisher,
		Config:   &cfg.Engine,
		PodID:    podID,
	})
	slog.Info("Run engine initialized", "model", cfg.LLM.Model)

	// 7. Memory writer
	writer := memwriter.NewWriter(settingsService, memoriesService, messagesService,
		llmClient, cipher, cfg.Memory.WriterMaxMessages)

	// 8. Delivery providers
	var providers []delivery.Provider
	if cfg.Delivery.DiscordEnabled() {
		discord, err := delivery.NewDiscord(cfg.Delivery.DiscordBotToken)
		if err != nil {
			slog.Error("Failed to initialize Discord delivery", "error", err)
			os.Exit(1)
		}
		providers = append(providers, discord)
	} else {
		slog.Info("Discord delivery disabled: no bot token configured")
	}
	dispatcher := delivery.NewDispatcher(providers...)

	// 9. Worker pool with one handler per queue
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, q)
	workerPool.Register(queue.QueueRuns, queue.NewRunHandler(dbClient.Client, cfg.Queue, eng))
	workerPool.Register(queue.QueueWake, queue.NewWakeHandler(dbClient.Client, q))
	workerPool.Register(queue.QueueMemoryWrites, queue.NewMemoryWriteHandler(writer))
	workerPool.Register(queue.QueueMessages, delivery.NewMessagesHandler(dispatcher, q))
	workerPool.Register(queue.QueueDeliveryAcks, delivery.NewAcksHandler(dbClient.Client))

	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Trigger dispatcher and retention cleanup
	triggerDispatcher := scheduler.NewDispatcher(&cfg.Scheduler, dbClient.Client, q)
	triggerDispatcher.Start(ctx)

	cleaner := cleanup.NewService(cfg.Retention, dbClient.Client, q)
	cleaner.Start(ctx)

	// 11. Start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, q, workerPool, cipher)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Conductor started successfully",
		"pod_id", podID,
		"workers_per_queue", cfg.Queue.WorkerConcurrency)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop producing new work, then drain workers
	triggerDispatcher.Stop()
	cleaner.Stop()

	drainCtx, drainCancel := context.WithTimeout(ctx, cfg.Queue.DrainTimeout)
	defer drainCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Worker drain timeout exceeded, unfinished runs will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
