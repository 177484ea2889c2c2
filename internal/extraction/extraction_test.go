package extraction_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"

	"github.com/JaimeStill/brand-lab/internal/extraction"
)

type mapOpener map[string][]byte

func (m mapOpener) Open(_ context.Context, address string) ([]byte, error) {
	data, ok := m[address]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	doc := docx.New().WithDefaultTheme()
	for _, p := range paragraphs {
		doc.AddParagraph().AddText(p)
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	return buf.Bytes()
}

func TestText(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
		want        string
	}{
		{"png", []byte{0x89, 'P', 'N', 'G'}, "image/png", extraction.ImageSentinel},
		{"jpeg", []byte{0xff, 0xd8}, "image/jpeg", extraction.ImageSentinel},
		{"webp", []byte("RIFF"), "image/webp", extraction.ImageSentinel},
		{"plain text", []byte("Acme makes rockets"), "text/plain", "Acme makes rockets"},
		{"invalid utf-8", []byte("Acme\xffRockets"), "text/plain", "Acme�Rockets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extraction.Text(tt.data, tt.contentType)
			if err != nil {
				t.Fatalf("Text() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText_Docx(t *testing.T) {
	data := buildDocx(t, "Acme Rockets", "Reusable launch for everyone")

	got, err := extraction.Text(data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	for _, want := range []string{"Acme Rockets", "Reusable launch for everyone"} {
		if !strings.Contains(got, want) {
			t.Errorf("Text() = %q, missing %q", got, want)
		}
	}
	if strings.Index(got, "Acme Rockets") > strings.Index(got, "Reusable") {
		t.Errorf("paragraph order not preserved: %q", got)
	}
}

func TestText_Malformed(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{"pdf", "application/pdf"},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extraction.Text([]byte("definitely not a document"), tt.contentType)
			if !errors.Is(err, extraction.ErrExtraction) {
				t.Errorf("Text() error = %v, want ErrExtraction", err)
			}
			if got != "" {
				t.Errorf("Text() = %q, want no partial text", got)
			}
		})
	}
}

func TestExtractor_Extract(t *testing.T) {
	opener := mapOpener{"addr://brand.txt": []byte("Brand voice: warm")}
	e := extraction.New(opener, nil, slog.New(slog.DiscardHandler))

	got, err := e.Extract(context.Background(), "addr://brand.txt", "text/plain")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "Brand voice: warm" {
		t.Errorf("Extract() = %q", got)
	}

	if _, err := e.Extract(context.Background(), "addr://missing", "text/plain"); !errors.Is(err, extraction.ErrExtraction) {
		t.Errorf("Extract(missing) error = %v, want ErrExtraction", err)
	}
}
