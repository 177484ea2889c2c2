package documents

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// formOverhead is the multipart framing allowance on top of the file limit.
const formOverhead = 1 << 20

var extensionTypes = map[string]string{
	".pdf":  ContentTypePDF,
	".docx": ContentTypeDOCX,
	".jpg":  ContentTypeJPEG,
	".jpeg": ContentTypeJPEG,
	".png":  ContentTypePNG,
	".webp": ContentTypeWebP,
}

// ReceiveUpload reads the multipart "file" field from r and validates its
// type and size. PDFs additionally get a page count; a PDF that pdfcpu cannot
// read is still accepted.
func ReceiveUpload(w http.ResponseWriter, r *http.Request, maxUploadSize int64, logger *slog.Logger) (*Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+formOverhead)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrRequestTooLarge
		}
		return nil, ErrInvalidFile
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, ErrInvalidFile
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, ErrInvalidFile
	}

	contentType := detectContentType(header.Header.Get("Content-Type"), header.Filename, data)
	if err := Validate(contentType, int64(len(data)), maxUploadSize); err != nil {
		return nil, err
	}

	upload := &Upload{
		OriginalName: header.Filename,
		ContentType:  contentType,
		Data:         data,
	}

	if contentType == ContentTypePDF {
		count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
		if err != nil {
			logger.Warn("failed to extract pdf page count", "error", err)
		} else {
			upload.PageCount = &count
		}
	}

	return upload, nil
}

func detectContentType(header, filename string, data []byte) string {
	if header != "" {
		if mt, _, err := mime.ParseMediaType(header); err == nil && mt != "application/octet-stream" {
			return mt
		}
	}
	if ct, ok := extensionTypes[strings.ToLower(path.Ext(filename))]; ok {
		return ct
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt
}
