// Package storage provides blob storage for uploaded documents.
// A System persists opaque bytes under keys and maps each key to the public
// address handed back to clients. Filesystem and Google Cloud Storage
// implementations are provided.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/brand-lab/pkg/lifecycle"
)

// Metadata describes a stored object.
type Metadata struct {
	ContentType string
	Attributes  map[string]string
}

// System defines blob storage operations.
type System interface {
	// Store saves data at key, overwriting any existing object.
	// Returns ErrInvalidKey if the key is empty or contains path traversal.
	Store(ctx context.Context, key string, data []byte, meta Metadata) error

	// Retrieve returns the data stored at key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// URL returns the public address for key.
	URL(key string) string

	// Key resolves an address issued by URL back to its key.
	// Returns ErrForeignAddress for any other address.
	Key(address string) (string, error)

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}

// New creates the System selected by cfg.Backend.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Backend {
	case BackendFilesystem, "":
		return newFilesystem(cfg, logger)
	case BackendGCS:
		return newGCS(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Backend)
	}
}

// Addresser maps keys to public addresses under a fixed prefix.
type Addresser struct {
	prefix string
}

// NewAddresser creates an Addresser for publicURL.
func NewAddresser(publicURL string) Addresser {
	return Addresser{prefix: strings.TrimSuffix(publicURL, "/")}
}

// URL joins the prefix and key.
func (a Addresser) URL(key string) string {
	return a.prefix + "/" + strings.TrimPrefix(key, "/")
}

// Key strips the prefix from address.
func (a Addresser) Key(address string) (string, error) {
	rest, ok := strings.CutPrefix(address, a.prefix+"/")
	if !ok || rest == "" {
		return "", ErrForeignAddress
	}
	return rest, nil
}
