package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/JaimeStill/brand-lab/pkg/lifecycle"
)

// gcsStore stores blobs as objects in a single Google Cloud Storage bucket.
// Object names are the keys; addresses are public object URLs.
type gcsStore struct {
	Addresser
	client *gcs.Client
	bucket *gcs.BucketHandle
	name   string
	logger *slog.Logger
}

func newGCS(cfg *Config, logger *slog.Logger) (System, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := gcs.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	return &gcsStore{
		Addresser: NewAddresser(cfg.PublicURL),
		client:    client,
		bucket:    client.Bucket(cfg.Bucket),
		name:      cfg.Bucket,
		logger:    logger.With("system", "storage", "backend", "gcs", "bucket", cfg.Bucket),
	}, nil
}

func (g *gcsStore) Start(lc *lifecycle.Coordinator) error {
	g.logger.Info("starting storage system")

	lc.OnStartup(func() {
		ctx, cancel := context.WithTimeout(lc.Context(), defaultProbeTimeout)
		defer cancel()

		if _, err := g.bucket.Attrs(ctx); err != nil {
			g.logger.Warn("bucket check failed", "error", err)
			return
		}
		g.logger.Info("bucket reachable")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := g.client.Close(); err != nil {
			g.logger.Error("gcs client close failed", "error", err)
		}
	})

	return nil
}

func (g *gcsStore) Store(ctx context.Context, key string, data []byte, meta Metadata) error {
	if key == "" {
		return ErrInvalidKey
	}

	w := g.bucket.Object(key).NewWriter(ctx)
	w.ContentType = meta.ContentType
	w.Metadata = meta.Attributes

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("write object: %w", mapGCSError(err))
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object: %w", mapGCSError(err))
	}

	return nil
}

func (g *gcsStore) Retrieve(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	r, err := g.bucket.Object(key).NewReader(ctx)
	if err != nil {
		return nil, mapGCSError(err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return data, nil
}

func mapGCSError(err error) error {
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return ErrNotFound
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusForbidden, http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		case http.StatusNotFound:
			return ErrNotFound
		}
	}
	return err
}

const defaultProbeTimeout = 10 * time.Second
