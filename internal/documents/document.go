// Package documents accepts brand document uploads and persists them in blob
// storage. Each stored document is addressed by an opaque URL that the
// extraction stage later resolves back to the stored bytes.
package documents

// Accepted content types.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeWebP = "image/webp"
)

// AllowedContentTypes lists every content type accepted for upload.
var AllowedContentTypes = []string{
	ContentTypePDF,
	ContentTypeDOCX,
	ContentTypeJPEG,
	ContentTypePNG,
	ContentTypeWebP,
}

// Document is an uploaded file as recorded by the blob store.
// It is immutable once created.
type Document struct {
	Address      string `json:"address"`
	ContentType  string `json:"contentType"`
	SizeBytes    int64  `json:"sizeBytes"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	PageCount    *int   `json:"pageCount,omitempty"`
}

// Upload is a received file that passed type and size validation.
type Upload struct {
	OriginalName string
	ContentType  string
	Data         []byte
	PageCount    *int
}
