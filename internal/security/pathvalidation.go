package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxNameLength bounds user-supplied names that become file names.
const MaxNameLength = 128

// ValidateName checks that a caller-supplied identifier can be used as a
// single path element. It rejects empty names, "." and "..", names longer
// than MaxNameLength, and names containing a path separator or NUL byte.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("name is empty")
	case name == "." || name == "..":
		return fmt.Errorf("name %q is reserved", name)
	case len(name) > MaxNameLength:
		return fmt.Errorf("name is %d bytes long (max %d)", len(name), MaxNameLength)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("name %q contains a path separator or NUL byte", name)
	}
	return nil
}

// ContainedPath joins name onto dir and checks that the cleaned result is
// still inside dir. The check is purely lexical, so it works for in-memory
// filesystems and for directories that do not exist yet.
func ContainedPath(dir, name string) (string, error) {
	cleanDir := filepath.Clean(dir)
	joined := filepath.Join(cleanDir, name)

	relPath, err := filepath.Rel(cleanDir, joined)
	if err != nil {
		return "", fmt.Errorf("path is outside safe directory: %w", err)
	}

	// Reject paths that escape the safe directory
	if relPath == "." || relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) || filepath.IsAbs(relPath) {
		return "", fmt.Errorf("path traversal detected: %s attempts to escape %s", name, dir)
	}

	return joined, nil
}

// SanitizeFilename makes a safe filename from an arbitrary string. It replaces
// any characters that are not ASCII letters, digits, dot, underscore or dash
// with an underscore, collapses repeated underscores and trims the result to
// MaxNameLength. Used for download names in Content-Disposition headers.
func SanitizeFilename(s string) string {
	if s == "" {
		return "unknown"
	}
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		if b.Len() >= MaxNameLength {
			break
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "unknown"
	}
	return out
}
