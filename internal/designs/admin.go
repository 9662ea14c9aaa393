package designs

import (
	"compress/gzip"
	"database/sql"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/tailscale/tailsql/server/tailsql"
	"tailscale.com/tsweb"

	"github.com/banshee-data/pointcloud/internal/httputil"
	"github.com/banshee-data/pointcloud/internal/monitoring"
)

// DesignStats summarises the contents of the designs table.
type DesignStats struct {
	Designs       int        `json:"designs"`
	TotalPoints   int64      `json:"total_points"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`
	SchemaVersion uint       `json:"schema_version"`
	Dirty         bool       `json:"dirty"`
	Path          string     `json:"path"`
}

// Stats reports row and point totals, the latest save time and the applied
// migration version.
func (s *SQLiteStore) Stats() (DesignStats, error) {
	st := DesignStats{Path: s.path}
	var lastNs sql.NullInt64
	err := s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(point_count), 0), MAX(updated_at_ns) FROM designs`).
		Scan(&st.Designs, &st.TotalPoints, &lastNs)
	if err != nil {
		return st, fmt.Errorf("design stats: %w", err)
	}
	if lastNs.Valid {
		last := time.Unix(0, lastNs.Int64).UTC()
		st.LastUpdated = &last
	}
	st.SchemaVersion, st.Dirty, err = s.MigrateVersion()
	return st, err
}

// AttachAdminRoutes mounts the SQL console, a stats page and an on-demand
// backup under /debug/ on mux.
func (s *SQLiteStore) AttachAdminRoutes(mux *http.ServeMux) {
	debug := tsweb.Debugger(mux)

	tsql, err := tailsql.NewServer(tailsql.Options{
		RoutePrefix: "/debug/tailsql/",
	})
	if err != nil {
		log.Fatalf("failed to create tailsql server: %v", err)
	}
	tsql.SetDB("sqlite://"+s.path, s.db, &tailsql.DBOptions{
		Label: "Designs DB",
	})
	debug.Handle("tailsql/", "SQL live debugging", tsql.NewMux())

	debug.Handle("db-stats", "Design table statistics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, err := s.Stats()
		if err != nil {
			monitoring.Logf("design stats failed: %v", err)
			httputil.InternalServerError(w, "Failed to read design stats")
			return
		}
		httputil.WriteJSONOK(w, st)
	}))

	debug.Handle("backup", "Create and download a backup of the designs database now", http.HandlerFunc(s.serveBackup))
}

func (s *SQLiteStore) serveBackup(w http.ResponseWriter, r *http.Request) {
	backupPath := filepath.Join(os.TempDir(), fmt.Sprintf("designs-backup-%d.db", time.Now().UnixNano()))
	if _, err := s.db.Exec("VACUUM INTO ?", backupPath); err != nil {
		monitoring.Logf("backup %s failed: %v", backupPath, err)
		httputil.InternalServerError(w, "Failed to create backup")
		return
	}
	defer func() {
		if err := os.Remove(backupPath); err != nil {
			monitoring.Logf("failed to remove backup file: %v", err)
		}
	}()

	backupFile, err := os.Open(backupPath)
	if err != nil {
		monitoring.Logf("open backup %s failed: %v", backupPath, err)
		httputil.InternalServerError(w, "Failed to open backup file")
		return
	}
	defer backupFile.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.gz", filepath.Base(backupPath)))
	w.Header().Set("Content-Type", "application/gzip")

	gz := gzip.NewWriter(w)
	defer gz.Close()
	if _, err := io.Copy(gz, backupFile); err != nil {
		monitoring.Logf("failed to stream backup: %v", err)
	}
}
