package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
)

// Backend selects the blob store implementation.
type Backend string

const (
	BackendFilesystem Backend = "filesystem"
	BackendGCS        Backend = "gcs"
)

// Config contains blob storage configuration.
type Config struct {
	Backend Backend `toml:"backend"`

	// BasePath is the root directory for filesystem storage.
	// Default: ".data/blobs"
	BasePath string `toml:"base_path"`

	Bucket          string `toml:"bucket"`
	CredentialsFile string `toml:"credentials_file"`

	// PublicURL prefixes every key to form the address handed to clients.
	// Defaults to the GCS public endpoint for the bucket, or the local blob
	// route for the filesystem backend.
	PublicURL string `toml:"public_url"`

	// MaxUploadSize uses binary units: "10MiB" and "10MB" both mean 10485760 bytes.
	MaxUploadSize    string `toml:"max_upload_size"`
	maxUploadSizeVal int64
}

// Env maps environment variable names for storage configuration.
type Env struct {
	Backend         string
	BasePath        string
	Bucket          string
	CredentialsFile string
	PublicURL       string
	MaxUploadSize   string
}

// MaxUploadSizeBytes returns the parsed upload limit.
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	c.loadDefaults()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Bucket != "" {
		c.Bucket = overlay.Bucket
	}
	if overlay.CredentialsFile != "" {
		c.CredentialsFile = overlay.CredentialsFile
	}
	if overlay.PublicURL != "" {
		c.PublicURL = overlay.PublicURL
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
}

func (c *Config) loadDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFilesystem
	}
	if c.BasePath == "" {
		c.BasePath = ".data/blobs"
	}
	if c.Bucket == "" {
		c.Bucket = "brand-lab-documents"
	}
	if c.PublicURL == "" {
		switch c.Backend {
		case BackendGCS:
			c.PublicURL = "https://storage.googleapis.com/" + c.Bucket
		default:
			c.PublicURL = "http://localhost:8080/api/documents/blobs"
		}
	}
	c.PublicURL = strings.TrimSuffix(c.PublicURL, "/")
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MiB"
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := getenv(env.Backend); v != "" {
		c.Backend = Backend(v)
	}
	if v := getenv(env.BasePath); v != "" {
		c.BasePath = v
	}
	if v := getenv(env.Bucket); v != "" {
		c.Bucket = v
	}
	if v := getenv(env.CredentialsFile); v != "" {
		c.CredentialsFile = v
	}
	if v := getenv(env.PublicURL); v != "" {
		c.PublicURL = v
	}
	if v := getenv(env.MaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendFilesystem:
		if c.BasePath == "" {
			return fmt.Errorf("base_path required")
		}
	case BackendGCS:
		if c.Bucket == "" {
			return fmt.Errorf("bucket required")
		}
	default:
		return fmt.Errorf("invalid backend: %s (must be filesystem or gcs)", c.Backend)
	}

	size, err := units.RAMInBytes(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	return nil
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
