package documents

import "context"

// System defines the blob store adapter operations.
type System interface {
	// Store validates and persists data under a freshly generated key.
	// Validation failures return before any write.
	Store(ctx context.Context, data []byte, contentType, originalName string) (*Document, error)

	// Open resolves an address issued by Store and returns the stored bytes.
	Open(ctx context.Context, address string) ([]byte, error)

	// Blob returns the bytes stored at key.
	Blob(ctx context.Context, key string) ([]byte, error)

	// MaxUploadSize returns the accepted upload limit in bytes.
	MaxUploadSize() int64
}
