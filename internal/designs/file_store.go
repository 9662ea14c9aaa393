package designs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/banshee-data/pointcloud/internal/fsutil"
	"github.com/banshee-data/pointcloud/internal/monitoring"
	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/security"
)

// DefaultDir is the directory designs are written to when none is configured.
const DefaultDir = "designs"

const fileExt = ".json"

// FileStore keeps one JSON file per design, <dir>/<name>.json, holding the
// bare array of point objects. The directory is created on first save.
type FileStore struct {
	mu  sync.RWMutex
	fs  fsutil.FileSystem
	dir string
}

// NewFileStore returns a store rooted at dir on fsys.
func NewFileStore(fsys fsutil.FileSystem, dir string) *FileStore {
	if dir == "" {
		dir = DefaultDir
	}
	return &FileStore{fs: fsys, dir: filepath.Clean(dir)}
}

// Dir returns the directory holding the design files.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	p, err := security.ContainedPath(s.dir, name+fileExt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return p, nil
}

// Save writes the cloud to a temporary file and renames it into place so a
// concurrent Load never sees a partial file.
func (s *FileStore) Save(name string, points pointcloud.Cloud) (string, error) {
	p, err := s.path(name)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(nonNil(points))
	if err != nil {
		return "", fmt.Errorf("encode design %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create designs directory: %w", err)
	}
	tmp := p + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write design %q: %w", name, err)
	}
	if err := s.fs.Rename(tmp, p); err != nil {
		_ = s.fs.Remove(tmp)
		return "", fmt.Errorf("commit design %q: %w", name, err)
	}

	monitoring.Logf("saved design %q (%d points) to %s", name, len(points), p)
	return p, nil
}

// Load reads a stored design. Names that could never have been saved are
// reported as not found.
func (s *FileStore) Load(name string) (pointcloud.Cloud, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, notFound(name)
	}

	s.mu.RLock()
	data, err := s.fs.ReadFile(p)
	s.mu.RUnlock()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read design %q: %w", name, err)
	}

	var points pointcloud.Cloud
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("decode design %q: %w", name, err)
	}
	return nonNil(points), nil
}

// List returns the stems of the .json files in the store directory. A
// directory that does not exist yet holds no designs.
func (s *FileStore) List() ([]string, error) {
	s.mu.RLock()
	entries, err := s.fs.ReadDir(s.dir)
	s.mu.RUnlock()
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}
