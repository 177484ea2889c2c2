package storage_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/brand-lab/pkg/storage"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &storage.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Backend != storage.BackendFilesystem {
		t.Errorf("Backend = %q, want filesystem", cfg.Backend)
	}
	if cfg.MaxUploadSizeBytes() != 10*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want %d", cfg.MaxUploadSizeBytes(), 10*1024*1024)
	}
	if cfg.PublicURL != "http://localhost:8080/api/documents/blobs" {
		t.Errorf("PublicURL = %q", cfg.PublicURL)
	}
}

func TestConfig_Finalize_GCS(t *testing.T) {
	t.Setenv("TEST_STORAGE_BACKEND", "gcs")
	t.Setenv("TEST_STORAGE_BUCKET", "keyview-brand-documents")

	cfg := &storage.Config{}
	err := cfg.Finalize(&storage.Env{Backend: "TEST_STORAGE_BACKEND", Bucket: "TEST_STORAGE_BUCKET"})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	want := "https://storage.googleapis.com/keyview-brand-documents"
	if cfg.PublicURL != want {
		t.Errorf("PublicURL = %q, want %q", cfg.PublicURL, want)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"backend", storage.Config{Backend: "s3"}},
		{"size", storage.Config{MaxUploadSize: "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() error = nil, want error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := storage.Config{Backend: storage.BackendFilesystem, MaxUploadSize: "10MiB"}
	cfg.Merge(&storage.Config{MaxUploadSize: "20MiB", Bucket: "other"})

	if cfg.MaxUploadSize != "20MiB" {
		t.Errorf("MaxUploadSize = %q, want 20MiB", cfg.MaxUploadSize)
	}
	if cfg.Bucket != "other" {
		t.Errorf("Bucket = %q, want other", cfg.Bucket)
	}
	if cfg.Backend != storage.BackendFilesystem {
		t.Errorf("Backend = %q, want filesystem", cfg.Backend)
	}
}

func TestAddresser_ForeignAddress(t *testing.T) {
	a := storage.NewAddresser("https://storage.googleapis.com/bucket/")

	tests := []string{
		"https://storage.googleapis.com/other/key.pdf",
		"https://storage.googleapis.com/bucket/",
		"file:///etc/passwd",
	}

	for _, addr := range tests {
		t.Run(addr, func(t *testing.T) {
			if _, err := a.Key(addr); !errors.Is(err, storage.ErrForeignAddress) {
				t.Errorf("Key(%q) error = %v, want ErrForeignAddress", addr, err)
			}
		})
	}
}
