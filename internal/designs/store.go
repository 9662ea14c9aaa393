// Package designs persists caller-named point clouds. The generators never
// touch it; only the API layer reads and writes designs.
package designs

import (
	"errors"
	"fmt"

	"github.com/banshee-data/pointcloud/internal/pointcloud"
	"github.com/banshee-data/pointcloud/internal/security"
)

var (
	// ErrNotFound is returned by Load when no design is stored under a name.
	ErrNotFound = errors.New("design not found")
	// ErrInvalidName is returned by Save when a name cannot be stored.
	ErrInvalidName = errors.New("invalid design name")
)

// DefaultName is used when a save request omits the name.
const DefaultName = "custom_design"

// Store persists named point clouds. Saving under an existing name replaces
// the stored cloud. Implementations are safe for concurrent use.
type Store interface {
	// Save stores points under name and returns where they were written.
	Save(name string, points pointcloud.Cloud) (string, error)
	// Load returns the cloud stored under name, or an error wrapping
	// ErrNotFound.
	Load(name string) (pointcloud.Cloud, error)
	// List returns the stored names in ascending order. It never returns nil.
	List() ([]string, error)
}

func validateName(name string) error {
	if err := security.ValidateName(name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return nil
}

// notFound wraps ErrNotFound with the requested name.
func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// nonNil keeps empty clouds serialising as [] rather than null.
func nonNil(c pointcloud.Cloud) pointcloud.Cloud {
	if c == nil {
		return pointcloud.Cloud{}
	}
	return c
}
