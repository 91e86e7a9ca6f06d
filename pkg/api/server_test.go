package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/crypto"
	"github.com/conductorhq/conductor/pkg/queue"
	testdb "github.com/conductorhq/conductor/test/database"
)

// testEncryptionKey is a fixed AES-256 key so settings tests can seal
// user API keys without real secrets.
const testEncryptionKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// apiFixture serves the full route table against a throwaway schema.
// No worker pool or scheduler runs, so jobs enqueued by handlers stay
// on their queues where tests can inspect them.
type apiFixture struct {
	server *Server
	router *gin.Engine
	ent    *ent.Client
	cipher *crypto.Cipher
}

// newAPIFixture builds the server with the given cipher. Tests for the
// degraded no-encryption-key deployment pass nil.
func newAPIFixture(t *testing.T, cipher *crypto.Cipher) *apiFixture {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	cfg := &config.Config{
		Server: config.ServerConfig{
			TenantID: "acme",
			AgentID:  "conductor",
		},
		Memory: config.MemoryConfig{
			WriterMaxMessages:  25,
			MaxTurnsPerContext: 30,
		},
	}

	srv := NewServer(cfg, dbClient, queue.New(dbClient.Client), nil, cipher)
	return &apiFixture{
		server: srv,
		router: srv.routes(),
		ent:    dbClient.Client,
		cipher: cipher,
	}
}

func testCipher(t *testing.T) *crypto.Cipher {
	t.Helper()
	cipher, err := crypto.NewFromHex(testEncryptionKey)
	require.NoError(t, err)
	return cipher
}

// request issues one in-process request. A json.RawMessage body is sent
// verbatim; anything else non-nil is marshaled.
func (f *apiFixture) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(json.RawMessage)
		if !ok {
			var err error
			raw, err = json.Marshal(body)
			require.NoError(t, err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// doJSON issues a request, requires the status code, and decodes the
// response body into out when out is non-nil.
func (f *apiFixture) doJSON(t *testing.T, method, path string, body any, wantStatus int, out any) {
	t.Helper()

	rec := f.request(t, method, path, body)
	require.Equal(t, wantStatus, rec.Code, "%s %s: %s", method, path, rec.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "%s %s: %s", method, path, rec.Body.String())
	}
}

// wantError issues a request and requires an ErrorResponse containing
// the given substring.
func (f *apiFixture) wantError(t *testing.T, method, path string, body any, wantStatus int, contains string) {
	t.Helper()

	var resp ErrorResponse
	f.doJSON(t, method, path, body, wantStatus, &resp)
	assert.Contains(t, resp.Error, contains)
}

// jobs lists every job on a queue, oldest first.
func (f *apiFixture) jobs(t *testing.T, queueName string) []*ent.QueueJob {
	t.Helper()
	jobs, err := f.ent.QueueJob.Query().
		Where(queuejob.QueueEQ(queueName)).
		Order(ent.Asc(queuejob.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return jobs
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	var resp HealthResponse
	f.doJSON(t, http.MethodGet, "/health", nil, http.StatusOK, &resp)

	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Version)
	require.Contains(t, resp.Checks, "database")
	assert.Equal(t, "healthy", resp.Checks["database"].Status)

	// No worker pool is wired in this fixture, so no pool check appears.
	assert.NotContains(t, resp.Checks, "worker_pool")
}

func TestReadyEndpoint(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	var resp map[string]string
	f.doJSON(t, http.MethodGet, "/ready", nil, http.StatusOK, &resp)
	assert.Equal(t, "ready", resp["status"])
}

func TestSecurityHeaders(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	rec := f.request(t, http.MethodGet, "/ready", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	h := rec.Header()
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
	assert.Contains(t, h.Get("Permissions-Policy"), "camera=()")
}

func TestErrorMapping(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	t.Run("unknown resource maps to 404", func(t *testing.T) {
		f.wantError(t, http.MethodGet, "/api/v1/runs/ghost-run", nil,
			http.StatusNotFound, "resource not found")
	})

	t.Run("service validation maps to 400", func(t *testing.T) {
		f.wantError(t, http.MethodPost, "/api/v1/triggers", map[string]any{
			"agentId": "conductor",
			"cron":    "every five minutes",
		}, http.StatusBadRequest, "validation error on field 'cron'")
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/v1/triggers", json.RawMessage(`{not json`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
