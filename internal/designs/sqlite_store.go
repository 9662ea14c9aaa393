package designs

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/pointcloud/internal/monitoring"
	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/timeutil"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore keeps designs in a single SQLite table. Each save stamps a new
// revision UUID so overwrites are visible from the admin SQL console.
type SQLiteStore struct {
	db    *sql.DB
	path  string
	clock timeutil.Clock
}

// OpenSQLiteStore opens (or creates) the database at path and applies any
// pending migrations.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open designs db: %w", err)
	}
	// One connection keeps the pragmas below in force for every query and
	// serialises writers.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db, path: path, clock: timeutil.RealClock{}}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SetClock replaces the clock used to stamp updated_at_ns.
func (s *SQLiteStore) SetClock(c timeutil.Clock) {
	s.clock = c
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// newMigrate builds a migrate instance over the embedded migrations.
// Note: the instance is not closed because that would close s.db.
func (s *SQLiteStore) newMigrate() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// MigrateUp runs all pending migrations up to the latest version.
// Returns nil if no migrations were needed (already at latest version).
func (s *SQLiteStore) MigrateUp() error {
	m, err := s.newMigrate()
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// MigrateVersion returns the current migration version and dirty state.
// Returns 0, false, nil if no migrations have been applied yet.
func (s *SQLiteStore) MigrateVersion() (version uint, dirty bool, err error) {
	m, err := s.newMigrate()
	if err != nil {
		return 0, false, err
	}
	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Save upserts the design and returns a sqlite:// locator for it.
func (s *SQLiteStore) Save(name string, points pointcloud.Cloud) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	data, err := json.Marshal(nonNil(points))
	if err != nil {
		return "", fmt.Errorf("encode design %q: %w", name, err)
	}

	revision := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO designs (name, points_json, point_count, revision, updated_at_ns)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			points_json   = excluded.points_json,
			point_count   = excluded.point_count,
			revision      = excluded.revision,
			updated_at_ns = excluded.updated_at_ns`,
		name, string(data), len(points), revision, s.clock.Now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("insert design %q: %w", name, err)
	}

	monitoring.Logf("saved design %q (%d points) revision %s", name, len(points), revision)
	return fmt.Sprintf("sqlite://%s/designs/%s", s.path, name), nil
}

// Load returns the stored cloud for name.
func (s *SQLiteStore) Load(name string) (pointcloud.Cloud, error) {
	var data string
	err := s.db.QueryRow(`SELECT points_json FROM designs WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("query design %q: %w", name, err)
	}

	var points pointcloud.Cloud
	if err := json.Unmarshal([]byte(data), &points); err != nil {
		return nil, fmt.Errorf("decode design %q: %w", name, err)
	}
	return nonNil(points), nil
}

// List returns every stored name in ascending order.
func (s *SQLiteStore) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM designs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan design name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
