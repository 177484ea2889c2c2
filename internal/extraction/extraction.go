// Package extraction turns a stored document into plain text for analysis.
// PDF and DOCX files are parsed, images yield a sentinel, and anything else
// is read as UTF-8.
package extraction

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"

	"github.com/JaimeStill/brand-lab/pkg/metrics"
)

// ImageSentinel is the text produced for image documents.
const ImageSentinel = "[IMAGE_FILE]"

// StageExtract labels extraction outcomes in pipeline metrics.
const StageExtract = "extract"

const (
	contentTypePDF  = "application/pdf"
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrExtraction wraps every read or parse failure.
var ErrExtraction = errors.New("text extraction failed")

// Opener resolves a document address to its bytes.
type Opener interface {
	Open(ctx context.Context, address string) ([]byte, error)
}

// Extractor reads documents through an Opener and converts them to text.
type Extractor struct {
	opener  Opener
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// New creates an Extractor.
func New(opener Opener, rec *metrics.Recorder, logger *slog.Logger) *Extractor {
	return &Extractor{
		opener:  opener,
		metrics: rec,
		logger:  logger.With("system", "extraction"),
	}
}

// Extract returns the plain text of the document at address. No partial text
// is returned on failure.
func (e *Extractor) Extract(ctx context.Context, address, contentType string) (text string, err error) {
	defer func() { e.metrics.ObserveStage(StageExtract, err) }()

	data, err := e.opener.Open(ctx, address)
	if err != nil {
		return "", fmt.Errorf("%w: read document: %w", ErrExtraction, err)
	}

	text, err = Text(data, contentType)
	if err != nil {
		return "", err
	}

	e.logger.Info("text extracted", "content_type", contentType, "chars", len(text))
	return text, nil
}

// Text converts document bytes to plain text according to contentType.
func Text(data []byte, contentType string) (string, error) {
	switch {
	case contentType == contentTypePDF:
		return pdfText(data)
	case contentType == contentTypeDOCX:
		return docxText(data)
	case strings.HasPrefix(contentType, "image/"):
		return ImageSentinel, nil
	default:
		return strings.ToValidUTF8(string(data), "�"), nil
	}
}

func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf parser panic: %v", ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %w", ErrExtraction, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: read pdf text: %w", ErrExtraction, err)
	}

	var buf strings.Builder
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: read pdf text: %w", ErrExtraction, err)
	}
	return buf.String(), nil
}

func docxText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: docx parser panic: %v", ErrExtraction, r)
		}
	}()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open docx: %w", ErrExtraction, err)
	}

	var lines []string
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			lines = append(lines, v.String())
		case *docx.Table:
			lines = append(lines, v.String())
		}
	}
	return strings.Join(lines, "\n"), nil
}
