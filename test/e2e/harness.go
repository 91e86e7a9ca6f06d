package e2e

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/pkg/api"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/crypto"
	"github.com/conductorhq/conductor/pkg/database"
	"github.com/conductorhq/conductor/pkg/delivery"
	"github.com/conductorhq/conductor/pkg/engine"
	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/memwriter"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/scheduler"
	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/pkg/tools"
	testdb "github.com/conductorhq/conductor/test/database"
)

// testEncryptionKey is a fixed AES-256 key so settings and memory tests
// can seal user API keys without real secrets.
const testEncryptionKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// TestApp runs the complete stack against a throwaway Postgres schema:
// HTTP API, worker pool, trigger scheduler, memory writer, and a
// scripted LLM client standing in for the real provider. Everything
// else is the production wiring.
type TestApp struct {
	Config   *config.Config
	DB       *database.Client
	Ent      *ent.Client
	LLM      *ScriptedLLMClient
	Queue    *queue.Queue
	Runs     *services.RunService
	Steps    *services.StepService
	Messages *services.MessageService
	Memories *services.MemoryService
	Channels *services.ChannelService
	Triggers *services.TriggerService
	Settings *services.SettingsService
	BaseURL  string

	client *http.Client
}

type testAppOptions struct {
	cfg        *config.Config
	llmClient  *ScriptedLLMClient
	dbClient   *database.Client
	podID      string
	extraTools []tools.Tool
}

type TestAppOption func(*testAppOptions)

// WithConfig replaces the default test configuration.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(o *testAppOptions) { o.cfg = cfg }
}

// WithLLMClient injects a pre-scripted LLM client.
func WithLLMClient(c *ScriptedLLMClient) TestAppOption {
	return func(o *testAppOptions) { o.llmClient = c }
}

// WithDBClient reuses an existing database client. Multi-replica tests
// point several apps at one shared schema this way.
func WithDBClient(db *database.Client) TestAppOption {
	return func(o *testAppOptions) { o.dbClient = db }
}

// WithPodID overrides the pod identity used for claims and heartbeats.
func WithPodID(id string) TestAppOption {
	return func(o *testAppOptions) { o.podID = id }
}

// WithTools registers extra tools on top of the builtins.
func WithTools(ts ...tools.Tool) TestAppOption {
	return func(o *testAppOptions) { o.extraTools = append(o.extraTools, ts...) }
}

// defaultTestConfig returns production defaults tightened for tests:
// one worker, fast polling, and orphan scanning effectively off so
// recovery tests opt in explicitly.
func defaultTestConfig() *config.Config {
	qcfg := config.DefaultQueueConfig()
	qcfg.WorkerConcurrency = 1
	qcfg.PollInterval = 50 * time.Millisecond
	qcfg.PollIntervalJitter = 20 * time.Millisecond
	qcfg.HeartbeatInterval = 500 * time.Millisecond
	qcfg.OrphanScanInterval = time.Hour
	qcfg.OrphanThreshold = 5 * time.Second
	qcfg.DrainTimeout = 5 * time.Second
	qcfg.JobTimeout = time.Minute

	return &config.Config{
		Server: config.ServerConfig{
			TenantID: "acme",
			AgentID:  "conductor",
		},
		Engine: config.DefaultEngineConfig(),
		LLM: config.LLMConfig{
			APIKey: "test-key",
			Model:  "gpt-test",
		},
		Queue: qcfg,
		Scheduler: config.SchedulerConfig{
			TriggerScanInterval: 200 * time.Millisecond,
			TriggerBatchSize:    50,
		},
		Memory: config.MemoryConfig{
			WriterMaxMessages:  25,
			MaxTurnsPerContext: 30,
		},
		Retention:     config.DefaultRetentionConfig(),
		EncryptionKey: testEncryptionKey,
		LogLevel:      "error",
	}
}

// NewTestApp wires and starts the full application. Shutdown is
// registered on t.Cleanup in reverse start order.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	o := &testAppOptions{
		cfg:   defaultTestConfig(),
		podID: "e2e-pod",
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.llmClient == nil {
		o.llmClient = NewScriptedLLMClient()
	}
	if o.dbClient == nil {
		o.dbClient = testdb.NewTestClient(t)
	}

	cfg := o.cfg
	client := o.dbClient.Client

	q := queue.New(client)

	runs := services.NewRunService(client)
	steps := services.NewStepService(client)
	messages := services.NewMessageService(client)
	memories := services.NewMemoryService(client)
	channels := services.NewChannelService(client)
	triggers := services.NewTriggerService(client)
	settings := services.NewSettingsService(client)

	var cipher *crypto.Cipher
	if cfg.EncryptionKey != "" {
		var err error
		cipher, err = crypto.NewFromHex(cfg.EncryptionKey)
		require.NoError(t, err)
	}

	registry := tools.NewRegistry(tools.NewPolicyEngine())
	for _, tool := range tools.Builtins() {
		require.NoError(t, registry.Register(tool))
	}
	for _, tool := range o.extraTools {
		require.NoError(t, registry.Register(tool))
	}

	publisher := events.NewPublisher(o.dbClient.DB())

	eng := engine.New(engine.Deps{
		Runs:     runs,
		Steps:    steps,
		Messages: messages,
		Memories: memories,
		Channels: channels,
		Triggers: triggers,
		Queue:    q,
		LLM:      o.llmClient,
		Tools:    registry,
		Events:   publisher,
		Config:   &cfg.Engine,
		PodID:    o.podID,
	})

	writer := memwriter.NewWriter(settings, memories, messages, o.llmClient, cipher, cfg.Memory.WriterMaxMessages)

	dispatcher := delivery.NewDispatcher()

	pool := queue.NewWorkerPool(o.podID, client, cfg.Queue, q)
	pool.Register(queue.QueueRuns, queue.NewRunHandler(client, cfg.Queue, eng))
	pool.Register(queue.QueueWake, queue.NewWakeHandler(client, q))
	pool.Register(queue.QueueMemoryWrites, queue.NewMemoryWriteHandler(writer))
	pool.Register(queue.QueueMessages, delivery.NewMessagesHandler(dispatcher, q))
	pool.Register(queue.QueueDeliveryAcks, delivery.NewAcksHandler(client))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, pool.Start(ctx))

	sched := scheduler.NewDispatcher(&cfg.Scheduler, client, q)
	sched.Start(ctx)

	server := api.NewServer(cfg, o.dbClient, q, pool, cipher)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		if serveErr := server.StartWithListener(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			t.Logf("http server exited: %v", serveErr)
		}
	}()

	t.Cleanup(func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
		sched.Stop()
		pool.Stop()
		cancel()
	})

	return &TestApp{
		Config:   cfg,
		DB:       o.dbClient,
		Ent:      client,
		LLM:      o.llmClient,
		Queue:    q,
		Runs:     runs,
		Steps:    steps,
		Messages: messages,
		Memories: memories,
		Channels: channels,
		Triggers: triggers,
		Settings: settings,
		BaseURL:  fmt.Sprintf("http://%s", ln.Addr().String()),
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}
