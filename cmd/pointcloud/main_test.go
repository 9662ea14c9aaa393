package main

import (
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/pointcloud/internal/config"
	"github.com/banshee-data/pointcloud/internal/designs"
	"github.com/banshee-data/pointcloud/internal/monitoring"
	"github.com/banshee-data/pointcloud/internal/shapes"
)

// TestFlagDefaults verifies every flag exists with its documented default.
func TestFlagDefaults(t *testing.T) {
	if listen == nil || grpcListen == nil || storeKind == nil || designsDir == nil || dbPath == nil || debug == nil {
		t.Fatal("flag not defined")
	}
	assert.Equal(t, "0.0.0.0:5000", *listen)
	assert.Equal(t, "", *grpcListen)
	assert.Equal(t, config.StoreFile, *storeKind)
	assert.Equal(t, designs.DefaultDir, *designsDir)
	assert.Equal(t, "designs.db", *dbPath)
	assert.True(t, *debug)
	assert.False(t, *showVersion)
}

// newFlagSet mirrors the flag names main registers on flag.CommandLine.
func newFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet("pointcloud", flag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("listen", "0.0.0.0:5000", "")
	fs.String("grpc-listen", "", "")
	fs.String("store", config.StoreFile, "")
	fs.String("designs-dir", designs.DefaultDir, "")
	fs.String("db-path", "designs.db", "")
	fs.Bool("debug", true, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newFlagSet(t))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:5000", cfg.GetListen())
	assert.Equal(t, config.StoreFile, cfg.GetStore())
	assert.Equal(t, time.Second, cfg.GetShutdownTimeout())
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pointcloud.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: 127.0.0.1:7000\nstore: sqlite\ndebug: false\n"), 0o644))

	cfg, err := loadConfig(newFlagSet(t, "-config", path, "-store", "file", "-designs-dir", "out"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.GetListen())
	assert.Equal(t, config.StoreFile, cfg.GetStore())
	assert.Equal(t, "out", cfg.GetDesignsDir())
	assert.False(t, cfg.GetDebug())
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(newFlagSet(t, "-store", "postgres"))
	assert.Error(t, err)

	_, err = loadConfig(newFlagSet(t, "-config", filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	_, restore := monitoring.Capture()
	t.Cleanup(restore)

	t.Run("file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "designs")
		cfg, err := loadConfig(newFlagSet(t, "-designs-dir", dir))
		require.NoError(t, err)

		store, closeFn, attach, err := openStore(cfg)
		require.NoError(t, err)
		defer closeFn()
		assert.Nil(t, attach)

		filename, err := store.Save("ring", nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "ring.json"), filename)
	})

	t.Run("sqlite", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "designs.db")
		cfg, err := loadConfig(newFlagSet(t, "-store", "sqlite", "-db-path", db))
		require.NoError(t, err)

		store, closeFn, attach, err := openStore(cfg)
		require.NoError(t, err)
		defer closeFn()
		assert.NotNil(t, attach)

		_, err = store.Save("ring", nil)
		require.NoError(t, err)
		names, err := store.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"ring"}, names)
	})
}

func TestNewHandler(t *testing.T) {
	_, restore := monitoring.Capture()
	t.Cleanup(restore)

	tests := []struct {
		name      string
		args      []string
		debugCode int
	}{
		{name: "debug on", args: nil, debugCode: http.StatusOK},
		{name: "debug off", args: []string{"-debug=false"}, debugCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(newFlagSet(t, append(tt.args, "-designs-dir", t.TempDir())...))
			require.NoError(t, err)
			store, closeFn, attach, err := openStore(cfg)
			require.NoError(t, err)
			defer closeFn()

			h := newHandler(cfg, shapes.NewRegistry(), store, attach)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/list-designs", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

			req := httptest.NewRequest(http.MethodGet, "/debug/models", nil)
			req.RemoteAddr = "127.0.0.1:12345"
			rec = httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.debugCode, rec.Code)
		})
	}
}
