package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

// fileSystems returns each implementation rooted at a fresh directory.
func fileSystems(t *testing.T) map[string]struct {
	fs   FileSystem
	root string
} {
	t.Helper()
	return map[string]struct {
		fs   FileSystem
		root string
	}{
		"os":     {OSFileSystem{}, t.TempDir()},
		"memory": {NewMemoryFileSystem(), "/mem"},
	}
}

func TestFileSystem_WriteReadRename(t *testing.T) {
	for name, tc := range fileSystems(t) {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(tc.root, "designs")
			if err := tc.fs.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("MkdirAll failed: %v", err)
			}

			tmp := filepath.Join(dir, "a.json.tmp")
			final := filepath.Join(dir, "a.json")
			if err := tc.fs.WriteFile(tmp, []byte("[]"), 0o644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			if err := tc.fs.Rename(tmp, final); err != nil {
				t.Fatalf("Rename failed: %v", err)
			}

			if _, err := tc.fs.ReadFile(tmp); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("expected temp file to be gone after rename, got %v", err)
			}
			data, err := tc.fs.ReadFile(final)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if string(data) != "[]" {
				t.Errorf("expected %q, got %q", "[]", data)
			}
		})
	}
}

func TestFileSystem_ReadDirSorted(t *testing.T) {
	for name, tc := range fileSystems(t) {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(tc.root, "list")
			if err := tc.fs.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
				t.Fatalf("MkdirAll failed: %v", err)
			}
			for _, f := range []string{"b.json", "a.json", "c.txt"} {
				if err := tc.fs.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
					t.Fatalf("WriteFile failed: %v", err)
				}
			}

			entries, err := tc.fs.ReadDir(dir)
			if err != nil {
				t.Fatalf("ReadDir failed: %v", err)
			}

			want := []string{"a.json", "b.json", "c.txt", "sub"}
			if len(entries) != len(want) {
				t.Fatalf("expected %d entries, got %d", len(want), len(entries))
			}
			for i, e := range entries {
				if e.Name() != want[i] {
					t.Errorf("entry %d = %q, want %q", i, e.Name(), want[i])
				}
				if isDir := e.Name() == "sub"; e.IsDir() != isDir {
					t.Errorf("entry %q IsDir = %v", e.Name(), e.IsDir())
				}
			}
		})
	}
}

func TestFileSystem_ReadDirMissing(t *testing.T) {
	for name, tc := range fileSystems(t) {
		t.Run(name, func(t *testing.T) {
			_, err := tc.fs.ReadDir(filepath.Join(tc.root, "nope"))
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("expected ErrNotExist, got %v", err)
			}
		})
	}
}

func TestFileSystem_ReadFileMissing(t *testing.T) {
	for name, tc := range fileSystems(t) {
		t.Run(name, func(t *testing.T) {
			_, err := tc.fs.ReadFile(filepath.Join(tc.root, "missing.json"))
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("expected ErrNotExist, got %v", err)
			}
		})
	}
}

func TestFileSystem_Remove(t *testing.T) {
	for name, tc := range fileSystems(t) {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(tc.root, "rm")
			file := filepath.Join(dir, "f.json")
			if err := tc.fs.MkdirAll(dir, 0o755); err != nil {
				t.Fatalf("MkdirAll failed: %v", err)
			}
			if err := tc.fs.WriteFile(file, []byte("hello"), 0o644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			if err := tc.fs.Remove(dir); err == nil {
				t.Error("expected error removing non-empty directory")
			}
			if err := tc.fs.Remove(file); err != nil {
				t.Fatalf("Remove failed: %v", err)
			}
			if _, err := tc.fs.ReadFile(file); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("expected file removed, got %v", err)
			}
			if err := tc.fs.Remove(dir); err != nil {
				t.Fatalf("Remove dir failed: %v", err)
			}
			if _, err := tc.fs.ReadDir(dir); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("expected dir removed, got %v", err)
			}
			if err := tc.fs.Remove(file); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("expected ErrNotExist removing a missing file, got %v", err)
			}
		})
	}
}

func TestMemoryFileSystem_DataIsolation(t *testing.T) {
	mfs := NewMemoryFileSystem()

	original := []byte("original")
	if err := mfs.WriteFile("/iso.json", original, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	original[0] = 'X'

	data, _ := mfs.ReadFile("/iso.json")
	if string(data) != "original" {
		t.Errorf("stored data was modified through caller slice: %q", data)
	}

	data[0] = 'Y'
	again, _ := mfs.ReadFile("/iso.json")
	if string(again) != "original" {
		t.Errorf("stored data was modified through returned slice: %q", again)
	}
}

func TestMemoryFileSystem_PathCleaning(t *testing.T) {
	mfs := NewMemoryFileSystem()
	if err := mfs.WriteFile("/a/./b/../c.json", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := mfs.ReadFile("/a/c.json"); err != nil {
		t.Errorf("expected cleaned path to exist: %v", err)
	}

	entries, err := mfs.ReadDir("/a/")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "c.json" {
		t.Errorf("unexpected entries: %v", entries)
	}
}

func TestMemoryFileSystem_RenameMissing(t *testing.T) {
	mfs := NewMemoryFileSystem()
	err := mfs.Rename("/nope", "/other")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestMemoryFileSystem_ReadDirOnFile(t *testing.T) {
	mfs := NewMemoryFileSystem()
	_ = mfs.WriteFile("/f", []byte("x"), 0o644)
	if _, err := mfs.ReadDir("/f"); err == nil {
		t.Error("expected error listing a file")
	}
}
