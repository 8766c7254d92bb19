package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/config"
	"github.com/diegoclair/group-meeting-rotation/internal/database"
	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
	"github.com/diegoclair/group-meeting-rotation/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = retry.Policy{Attempts: 2, Delay: time.Millisecond, Timeout: time.Second}

var (
	testMembers = []entity.Member{
		{Name: "Ada", Email: "ada@lab.test"},
		{Name: "Grace", Email: "grace@lab.test"},
	}
	testSchedule = []entity.Meeting{
		{Date: "2026-10-19", Time: "09:00", Presenter1: "Ada", Presenter1Email: "ada@lab.test", Presenter2: "Grace", Presenter2Email: "grace@lab.test"},
		{Date: "2026-11-02", Time: "09:00", Presenter1: "Grace", Presenter1Email: "grace@lab.test"},
	}
)

// fakeKV emulates the get/set commands of a Redis REST endpoint.
type fakeKV struct {
	mu       sync.Mutex
	data     map[string]string
	failures int
	requests int
}

func newFakeKV(t *testing.T, token string) (*fakeKV, *httptest.Server) {
	kv := &fakeKV{data: map[string]string{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kv.mu.Lock()
		defer kv.mu.Unlock()

		kv.requests++
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}
		if kv.failures > 0 {
			kv.failures--
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"temporary"}`))
			return
		}

		switch {
		case strings.HasPrefix(r.URL.Path, "/get/"):
			key := strings.TrimPrefix(r.URL.Path, "/get/")
			value, ok := kv.data[key]
			if !ok {
				_, _ = w.Write([]byte(`{"result":null}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"result": value})
		case strings.HasPrefix(r.URL.Path, "/set/"):
			key := strings.TrimPrefix(r.URL.Path, "/set/")
			body, _ := io.ReadAll(r.Body)
			kv.data[key] = string(body)
			_, _ = w.Write([]byte(`{"result":"OK"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"unknown command"}`))
		}
	}))
	t.Cleanup(server.Close)
	return kv, server
}

func TestDocumentStore_Backends(t *testing.T) {
	tests := []struct {
		name    string
		backend func(t *testing.T) Backend
	}{
		{
			name: "file",
			backend: func(t *testing.T) Backend {
				b, err := NewFileBackend(filepath.Join(t.TempDir(), "data"))
				require.NoError(t, err)
				return b
			},
		},
		{
			name: "kv",
			backend: func(t *testing.T) Backend {
				_, server := newFakeKV(t, "secret")
				return NewKVBackend(server.URL, "secret", server.Client())
			},
		},
		{
			name: "sqlite",
			backend: func(t *testing.T) Backend {
				return newSQLiteBackend(database.SetupTestDB(t))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewDocumentStore(tt.backend(t), testPolicy)
			defer store.Close()

			members, err := store.LoadMembers(ctx)
			require.NoError(t, err)
			assert.Nil(t, members)

			schedule, err := store.LoadSchedule(ctx)
			require.NoError(t, err)
			assert.Nil(t, schedule)

			require.NoError(t, store.SaveMembers(ctx, testMembers))
			require.NoError(t, store.SaveSchedule(ctx, testSchedule))

			members, err = store.LoadMembers(ctx)
			require.NoError(t, err)
			assert.Equal(t, testMembers, members)

			schedule, err = store.LoadSchedule(ctx)
			require.NoError(t, err)
			assert.Equal(t, testSchedule, schedule)

			require.NoError(t, store.SaveSchedule(ctx, nil))
			schedule, err = store.LoadSchedule(ctx)
			require.NoError(t, err)
			assert.Empty(t, schedule)
			assert.NotNil(t, schedule)
		})
	}
}

func TestFileBackend_WritesReadableJSON(t *testing.T) {
	dir := t.TempDir()
	store := NewDocumentStore(mustFileBackend(t, dir), testPolicy)

	require.NoError(t, store.SaveMembers(context.Background(), testMembers))

	data, err := os.ReadFile(filepath.Join(dir, "members.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")
	assert.JSONEq(t, `[{"name":"Ada","email":"ada@lab.test"},{"name":"Grace","email":"grace@lab.test"}]`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestDocumentStore_LoadCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schedule.json"), []byte("{not json"), 0o644))

	store := NewDocumentStore(mustFileBackend(t, dir), testPolicy)

	_, err := store.LoadSchedule(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode schedule")
}

func TestKVBackend(t *testing.T) {
	t.Run("should retry transient failures", func(t *testing.T) {
		kv, server := newFakeKV(t, "secret")
		kv.failures = 1

		store := NewDocumentStore(NewKVBackend(server.URL+"/", "secret", server.Client()), testPolicy)

		require.NoError(t, store.SaveMembers(context.Background(), testMembers))

		kv.mu.Lock()
		defer kv.mu.Unlock()
		assert.JSONEq(t, `[{"name":"Ada","email":"ada@lab.test"},{"name":"Grace","email":"grace@lab.test"}]`, kv.data["members"])
	})

	t.Run("should fail with wrong token", func(t *testing.T) {
		_, server := newFakeKV(t, "secret")
		backend := NewKVBackend(server.URL, "wrong", server.Client())

		_, err := backend.Get(context.Background(), "members")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unauthorized")
	})

	t.Run("should not retry a rejected token", func(t *testing.T) {
		kv, server := newFakeKV(t, "secret")
		store := NewDocumentStore(NewKVBackend(server.URL, "wrong", server.Client()), testPolicy)

		_, err := store.LoadMembers(context.Background())

		require.Error(t, err)
		assert.True(t, retry.IsPermanent(err))
		kv.mu.Lock()
		defer kv.mu.Unlock()
		assert.Equal(t, 1, kv.requests)
	})
}

func TestNew_SelectsBackend(t *testing.T) {
	tests := []struct {
		name     string
		cfg      func(t *testing.T) *config.Config
		expected string
	}{
		{
			name: "files by default",
			cfg: func(t *testing.T) *config.Config {
				return &config.Config{DataDir: t.TempDir()}
			},
			expected: "file",
		},
		{
			name: "sqlite when a database path is set",
			cfg: func(t *testing.T) *config.Config {
				return &config.Config{DataDir: t.TempDir(), DatabasePath: filepath.Join(t.TempDir(), "rotation.db")}
			},
			expected: "sqlite",
		},
		{
			name: "kv wins over everything else",
			cfg: func(t *testing.T) *config.Config {
				return &config.Config{
					DataDir:      t.TempDir(),
					DatabasePath: filepath.Join(t.TempDir(), "rotation.db"),
					KVURL:        "http://kv.invalid",
					KVToken:      "token",
				}
			},
			expected: "kv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(context.Background(), tt.cfg(t))
			require.NoError(t, err)
			defer store.Close()

			assert.Equal(t, tt.expected, store.Backend())
		})
	}
}

func TestPostgresBackend(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	backend, err := NewPostgresBackend(ctx, url)
	require.NoError(t, err)
	store := NewDocumentStore(backend, testPolicy)
	defer store.Close()

	require.NoError(t, store.SaveSchedule(ctx, testSchedule))

	schedule, err := store.LoadSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSchedule, schedule)
}

func mustFileBackend(t *testing.T, dir string) *FileBackend {
	t.Helper()
	b, err := NewFileBackend(dir)
	require.NoError(t, err)
	return b
}
