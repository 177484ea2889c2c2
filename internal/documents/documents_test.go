package documents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/JaimeStill/brand-lab/internal/documents"
	"github.com/JaimeStill/brand-lab/pkg/lifecycle"
	"github.com/JaimeStill/brand-lab/pkg/metrics"
	"github.com/JaimeStill/brand-lab/pkg/storage"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

const publicURL = "https://blobs.test/bucket"

// recordingStorage is an in-memory storage.System that records writes.
type recordingStorage struct {
	storage.Addresser
	mu      sync.Mutex
	objects map[string][]byte
	meta    map[string]storage.Metadata
	writes  int
	failErr error
}

func newRecordingStorage() *recordingStorage {
	return &recordingStorage{
		Addresser: storage.NewAddresser(publicURL),
		objects:   make(map[string][]byte),
		meta:      make(map[string]storage.Metadata),
	}
}

func (s *recordingStorage) Store(_ context.Context, key string, data []byte, meta storage.Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.failErr != nil {
		return s.failErr
	}
	s.objects[key] = data
	s.meta[key] = meta
	return nil
}

func (s *recordingStorage) Retrieve(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (s *recordingStorage) Start(*lifecycle.Coordinator) error { return nil }

func (s *recordingStorage) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

const maxUpload = 1024

func newSystem(store storage.System, rec *metrics.Recorder) documents.System {
	return documents.New(store, maxUpload, rec, slog.New(slog.DiscardHandler))
}

var keyPattern = regexp.MustCompile(`^documents/\d+-[0-9a-f]{8}-[a-zA-Z0-9._-]+$`)

func TestStore(t *testing.T) {
	store := newRecordingStorage()
	sys := newSystem(store, nil)

	doc, err := sys.Store(context.Background(), []byte("%PDF-1.4"), documents.ContentTypePDF, "Acme Brand (final).pdf")
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	key, err := store.Key(doc.Address)
	if err != nil {
		t.Fatalf("Key(%q) error = %v", doc.Address, err)
	}
	if !keyPattern.MatchString(key) {
		t.Errorf("key = %q, does not match %s", key, keyPattern)
	}
	if !strings.HasSuffix(key, "-Acme_Brand__final_.pdf") {
		t.Errorf("key = %q, want sanitized name suffix", key)
	}
	if doc.Filename != key[len("documents/"):] {
		t.Errorf("Filename = %q, want last key segment", doc.Filename)
	}
	if doc.OriginalName != "Acme Brand (final).pdf" || doc.SizeBytes != 8 || doc.ContentType != documents.ContentTypePDF {
		t.Errorf("Document = %+v", doc)
	}
	if store.meta[key].ContentType != documents.ContentTypePDF {
		t.Errorf("stored content type = %q", store.meta[key].ContentType)
	}
	if store.meta[key].Attributes["originalName"] != "Acme Brand (final).pdf" {
		t.Errorf("stored attributes = %v", store.meta[key].Attributes)
	}
}

func TestStore_UniqueAddresses(t *testing.T) {
	sys := newSystem(newRecordingStorage(), nil)
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 50 {
		doc, err := sys.Store(ctx, []byte("x"), documents.ContentTypePNG, "logo.png")
		if err != nil {
			t.Fatalf("Store() error = %v", err)
		}
		if seen[doc.Address] {
			t.Fatalf("duplicate address %q", doc.Address)
		}
		seen[doc.Address] = true
	}
}

func TestStore_RejectsBeforeWrite(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
		want        error
	}{
		{"oversize", bytes.Repeat([]byte("a"), maxUpload+1), documents.ContentTypePDF, documents.ErrFileTooLarge},
		{"disallowed type", []byte("GIF89a"), "image/gif", documents.ErrUnsupportedType},
		{"empty", nil, documents.ContentTypePDF, documents.ErrInvalidFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newRecordingStorage()
			sys := newSystem(store, nil)

			_, err := sys.Store(context.Background(), tt.data, tt.contentType, "f")
			if !errors.Is(err, tt.want) {
				t.Errorf("Store() error = %v, want %v", err, tt.want)
			}
			if store.writeCount() != 0 {
				t.Errorf("writes = %d, want 0", store.writeCount())
			}
		})
	}
}

func TestStore_BackendFailure(t *testing.T) {
	store := newRecordingStorage()
	store.failErr = errors.New("bucket unavailable")
	rec := metrics.New("test")
	sys := newSystem(store, rec)

	_, err := sys.Store(context.Background(), []byte("x"), documents.ContentTypeJPEG, "a.jpg")
	if !errors.Is(err, documents.ErrStorage) {
		t.Fatalf("Store() error = %v, want ErrStorage", err)
	}
	if documents.MapHTTPStatus(err) != http.StatusBadGateway {
		t.Errorf("MapHTTPStatus() = %d, want 502", documents.MapHTTPStatus(err))
	}
	if got := testutil.ToFloat64(rec.StageCounter(documents.StageUpload, metrics.OutcomeFailure)); got != 1 {
		t.Errorf("upload failure count = %v, want 1", got)
	}
}

func TestOpen(t *testing.T) {
	sys := newSystem(newRecordingStorage(), nil)
	ctx := context.Background()

	doc, err := sys.Store(ctx, []byte("brand text"), documents.ContentTypePDF, "brand.pdf")
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	data, err := sys.Open(ctx, doc.Address)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if string(data) != "brand text" {
		t.Errorf("Open() = %q", data)
	}

	if _, err := sys.Open(ctx, "https://elsewhere.test/doc.pdf"); !errors.Is(err, documents.ErrUnknownAddress) {
		t.Errorf("Open(foreign) error = %v, want ErrUnknownAddress", err)
	}
	if _, err := sys.Open(ctx, publicURL+"/documents/missing.pdf"); !errors.Is(err, documents.ErrNotFound) {
		t.Errorf("Open(missing) error = %v, want ErrNotFound", err)
	}
}

func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart() error = %v", err)
	}
	part.Write(data)
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestHandler_Upload(t *testing.T) {
	store := newRecordingStorage()
	h := documents.NewHandler(newSystem(store, nil), slog.New(slog.DiscardHandler))

	body, ct := multipartBody(t, "guide.docx", "application/octet-stream", []byte("PK\x03\x04docx"))
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()

	h.Upload(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var doc documents.Document
	if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.ContentType != documents.ContentTypeDOCX {
		t.Errorf("ContentType = %q, want docx from extension", doc.ContentType)
	}
	if doc.OriginalName != "guide.docx" {
		t.Errorf("OriginalName = %q", doc.OriginalName)
	}
}

func TestHandler_UploadRejected(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
		wantStatus  int
	}{
		{"disallowed type", "anim.gif", "image/gif", []byte("GIF89a"), http.StatusBadRequest},
		{"oversize file", "big.pdf", "application/pdf", bytes.Repeat([]byte("a"), maxUpload+1), http.StatusBadRequest},
		{"oversize body", "huge.pdf", "application/pdf", bytes.Repeat([]byte("a"), maxUpload+2<<20), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newRecordingStorage()
			h := documents.NewHandler(newSystem(store, nil), slog.New(slog.DiscardHandler))

			body, ct := multipartBody(t, tt.filename, tt.contentType, tt.data)
			req := httptest.NewRequest(http.MethodPost, "/documents", body)
			req.Header.Set("Content-Type", ct)
			w := httptest.NewRecorder()

			h.Upload(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), `"stage":"upload"`) {
				t.Errorf("body missing upload stage: %s", w.Body.String())
			}
			if store.writeCount() != 0 {
				t.Errorf("writes = %d, want 0", store.writeCount())
			}
		})
	}
}

func TestHandler_UploadMissingFile(t *testing.T) {
	h := documents.NewHandler(newSystem(newRecordingStorage(), nil), slog.New(slog.DiscardHandler))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("name", "nothing")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	h.Upload(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandler_Blob(t *testing.T) {
	store := newRecordingStorage()
	sys := newSystem(store, nil)
	h := documents.NewHandler(sys, slog.New(slog.DiscardHandler))

	doc, err := sys.Store(context.Background(), []byte("%PDF-1.4"), documents.ContentTypePDF, "b.pdf")
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	key, _ := store.Key(doc.Address)

	mux := http.NewServeMux()
	for _, route := range h.Routes().Routes {
		mux.HandleFunc(route.Method+" /documents"+route.Pattern, route.Handler)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/blobs/"+key, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Header().Get("Content-Type") != documents.ContentTypePDF {
		t.Errorf("Content-Type = %q", w.Header().Get("Content-Type"))
	}
	if w.Body.String() != "%PDF-1.4" {
		t.Errorf("body = %q", w.Body.String())
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/documents/blobs/documents/none.pdf", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing blob status = %d, want 404", w.Code)
	}
}
