package documents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/brand-lab/pkg/metrics"
	"github.com/JaimeStill/brand-lab/pkg/storage"
)

// StageUpload labels upload outcomes in pipeline metrics.
const StageUpload = "upload"

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

type repo struct {
	storage       storage.System
	maxUploadSize int64
	metrics       *metrics.Recorder
	logger        *slog.Logger
}

// New creates a document store over the given blob storage.
func New(store storage.System, maxUploadSize int64, rec *metrics.Recorder, logger *slog.Logger) System {
	return &repo{
		storage:       store,
		maxUploadSize: maxUploadSize,
		metrics:       rec,
		logger:        logger.With("system", "documents"),
	}
}

func (r *repo) MaxUploadSize() int64 {
	return r.maxUploadSize
}

func (r *repo) Store(ctx context.Context, data []byte, contentType, originalName string) (doc *Document, err error) {
	defer func() { r.metrics.ObserveStage(StageUpload, err) }()

	if err := Validate(contentType, int64(len(data)), r.maxUploadSize); err != nil {
		return nil, err
	}

	now := time.Now()
	key := buildStorageKey(now, uuid.New(), originalName)

	meta := storage.Metadata{
		ContentType: contentType,
		Attributes: map[string]string{
			"originalName": originalName,
			"uploadedAt":   now.UTC().Format(time.RFC3339),
		},
	}

	if err := r.storage.Store(ctx, key, data, meta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	doc = &Document{
		Address:      r.storage.URL(key),
		ContentType:  contentType,
		SizeBytes:    int64(len(data)),
		Filename:     path.Base(key),
		OriginalName: originalName,
	}

	r.logger.Info("document stored", "key", key, "content_type", contentType, "size_bytes", doc.SizeBytes)
	return doc, nil
}

func (r *repo) Open(ctx context.Context, address string) ([]byte, error) {
	key, err := r.storage.Key(address)
	if err != nil {
		return nil, ErrUnknownAddress
	}
	return r.Blob(ctx, key)
}

func (r *repo) Blob(ctx context.Context, key string) ([]byte, error) {
	data, err := r.storage.Retrieve(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, storage.ErrInvalidKey) {
			return nil, ErrUnknownAddress
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return data, nil
}

// Validate checks contentType against the allow-list and size against max.
func Validate(contentType string, size, max int64) error {
	if size == 0 {
		return ErrInvalidFile
	}
	if !slices.Contains(AllowedContentTypes, contentType) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if size > max {
		return ErrFileTooLarge
	}
	return nil
}

func buildStorageKey(now time.Time, id uuid.UUID, originalName string) string {
	return "documents/" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + id.String()[:8] + "-" + sanitizeFilename(originalName)
}

func sanitizeFilename(name string) string {
	name = path.Base(name)
	if name == "." || name == "/" {
		name = "file"
	}
	return unsafeKeyChars.ReplaceAllString(name, "_")
}
