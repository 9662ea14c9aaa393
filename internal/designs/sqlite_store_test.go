package designs

import (
	"compress/gzip"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/pointcloud/internal/monitoring"
	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/timeutil"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "designs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_Migrations(t *testing.T) {
	s := openTestSQLite(t)

	version, dirty, err := s.MigrateVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)

	// Running again is a no-op.
	require.NoError(t, s.MigrateUp())
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "designs.db")

	s, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	_, err = s.Save("persisted", rocket)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load("persisted")
	require.NoError(t, err)
	assert.True(t, pointcloud.Equal(rocket, got))
}

func TestSQLiteStore_RevisionChangesOnOverwrite(t *testing.T) {
	s := openTestSQLite(t)

	revision := func() string {
		var rev string
		require.NoError(t, s.db.QueryRow(`SELECT revision FROM designs WHERE name = ?`, "r").Scan(&rev))
		return rev
	}

	where, err := s.Save("r", rocket)
	require.NoError(t, err)
	assert.Equal(t, "sqlite://"+s.Path()+"/designs/r", where)
	first := revision()
	assert.Len(t, first, 36)

	_, err = s.Save("r", rocket)
	require.NoError(t, err)
	assert.NotEqual(t, first, revision())
}

func TestSQLiteStore_Stats(t *testing.T) {
	s := openTestSQLite(t)

	empty, err := s.Stats()
	require.NoError(t, err)
	assert.Zero(t, empty.Designs)
	assert.Nil(t, empty.LastUpdated)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := timeutil.NewMockClock(start)
	s.SetClock(clock)

	_, err = s.Save("a", rocket)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = s.Save("b", rocket[:1])
	require.NoError(t, err)

	st, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Designs)
	assert.Equal(t, int64(4), st.TotalPoints)
	assert.Equal(t, uint(2), st.SchemaVersion)
	require.NotNil(t, st.LastUpdated)
	assert.Equal(t, start.Add(time.Minute), *st.LastUpdated)
}

func TestSQLiteStore_CorruptRow(t *testing.T) {
	s := openTestSQLite(t)
	_, err := s.db.Exec(`INSERT INTO designs (name, points_json, point_count, revision, updated_at_ns) VALUES ('bad', '{', 0, 'x', 0)`)
	require.NoError(t, err)

	_, err = s.Load("bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_AdminRoutes(t *testing.T) {
	s := openTestSQLite(t)
	mux := http.NewServeMux()
	s.AttachAdminRoutes(mux)

	// Routes may refuse non-local callers, but they must be registered.
	for _, endpoint := range []string{"/debug/db-stats", "/debug/backup", "/debug/tailsql/"} {
		t.Run(endpoint, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, endpoint, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/debug/db-stats", nil)
	req.RemoteAddr = "127.0.0.1:12345"
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"schema_version":2`)
}

func TestSQLiteStore_Backup(t *testing.T) {
	s := openTestSQLite(t)
	_, err := s.Save("backed-up", rocket)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.serveBackup(w, httptest.NewRequest(http.MethodGet, "/debug/backup", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/gzip", w.Header().Get("Content-Type"))

	gz, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	data, err := io.ReadAll(gz)
	require.NoError(t, err)

	restored := filepath.Join(t.TempDir(), "restored.db")
	require.NoError(t, os.WriteFile(restored, data, 0o644))

	db, err := sql.Open("sqlite", restored)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM designs WHERE name = 'backed-up'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLiteStore_AdminFailuresAreGeneric(t *testing.T) {
	logs, restore := monitoring.Capture()
	defer restore()

	s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "designs.db"))
	require.NoError(t, err)
	mux := http.NewServeMux()
	s.AttachAdminRoutes(mux)
	require.NoError(t, s.Close())

	tests := []struct {
		path string
		want string
	}{
		{"/debug/db-stats", "Failed to read design stats"},
		{"/debug/backup", "Failed to create backup"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.RemoteAddr = "127.0.0.1:12345"
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			require.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.want+`"}`, w.Body.String())
		})
	}

	lines := logs.Lines()
	require.Len(t, lines, len(tests))
	for _, line := range lines {
		assert.Contains(t, line, "database is closed")
	}
}
