package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/documents"
	"github.com/JaimeStill/brand-lab/internal/presentations"
	"github.com/JaimeStill/brand-lab/internal/questionnaire"
)

// SubmitResult pairs the submitted session with its presentation.
type SubmitResult struct {
	Session      *View                       `json:"session"`
	Presentation *presentations.Presentation `json:"presentation"`
}

// System defines wizard session operations.
type System interface {
	Create(ctx context.Context) (*View, error)
	Get(ctx context.Context, id uuid.UUID) (*View, error)

	// Attach stores the upload and attaches it to the session. A storage
	// failure leaves the session unchanged.
	Attach(ctx context.Context, id uuid.UUID, upload *documents.Upload) (*View, error)

	// Analyze runs brand analysis on the attached document and pre-fills
	// unedited answers. An analysis failure is recorded on the session and
	// is not returned as an error.
	Analyze(ctx context.Context, id uuid.UUID) (*View, error)

	Apply(ctx context.Context, id uuid.UUID, answers questionnaire.Answers) (*View, error)
	Fire(ctx context.Context, id uuid.UUID, event questionnaire.Event) (*View, error)
	Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error)

	// MaxUploadSize is the document size limit enforced on Attach.
	MaxUploadSize() int64
}

type manager struct {
	sessions      *lru.Cache[uuid.UUID, *session]
	documents     documents.System
	analysis      analysis.System
	presentations presentations.System
	now           func() time.Time
	logger        *slog.Logger
}

// New creates a session manager holding at most capacity sessions. The
// least recently used session is dropped when a new one would exceed it.
func New(
	capacity int,
	docs documents.System,
	analyzer analysis.System,
	pres presentations.System,
	logger *slog.Logger,
) (System, error) {
	cache, err := lru.New[uuid.UUID, *session](capacity)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}

	return &manager{
		sessions:      cache,
		documents:     docs,
		analysis:      analyzer,
		presentations: pres,
		now:           time.Now,
		logger:        logger.With("system", "sessions"),
	}, nil
}

func (m *manager) MaxUploadSize() int64 {
	return m.documents.MaxUploadSize()
}

func (m *manager) Create(ctx context.Context) (*View, error) {
	now := m.now().UTC()
	s := &session{
		id:        uuid.New(),
		wizard:    questionnaire.NewWizard(),
		createdAt: now,
		updatedAt: now,
	}

	v := s.view()
	if evicted := m.sessions.Add(s.id, s); evicted {
		m.logger.Debug("session evicted to make room")
	}

	m.logger.Info("session created", "id", s.id)
	return v, nil
}

func (m *manager) Get(ctx context.Context, id uuid.UUID) (*View, error) {
	s, err := m.find(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(), nil
}

func (m *manager) Attach(ctx context.Context, id uuid.UUID, upload *documents.Upload) (*View, error) {
	s, err := m.find(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.presentation != nil {
		return nil, ErrAlreadySubmitted
	}

	doc, err := m.documents.Store(ctx, upload.Data, upload.ContentType, upload.OriginalName)
	if err != nil {
		return nil, err
	}
	doc.PageCount = upload.PageCount

	s.wizard.AttachDocument(doc)
	s.touch(m.now())

	m.logger.Info("document attached", "session", id, "address", doc.Address)
	return s.view(), nil
}

func (m *manager) Analyze(ctx context.Context, id uuid.UUID) (*View, error) {
	s, err := m.find(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if err := s.wizard.CanAnalyze(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	doc := s.wizard.Document
	req := analysis.Request{
		DocumentURL: doc.Address,
		FileType:    doc.ContentType,
		FormData:    hints(s.wizard.Answers),
	}
	s.mu.Unlock()

	result, analyzeErr := m.analysis.AnalyzeDocument(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	// the session may have been submitted while the lock was released
	if s.presentation != nil {
		return nil, ErrAlreadySubmitted
	}
	if s.wizard.Document == nil || s.wizard.Document.Address != doc.Address {
		return nil, ErrDocumentChanged
	}

	if analyzeErr != nil {
		m.logger.Warn("analysis failed", "session", id, "stage", analysis.Stage(analyzeErr), "error", analyzeErr)
		s.wizard.FailAnalysis(analyzeErr)
	} else {
		s.wizard.CompleteAnalysis(result)
	}
	s.touch(m.now())
	return s.view(), nil
}

func (m *manager) Apply(ctx context.Context, id uuid.UUID, answers questionnaire.Answers) (*View, error) {
	return m.mutate(id, func(s *session) error {
		return s.wizard.Apply(answers)
	})
}

func (m *manager) Fire(ctx context.Context, id uuid.UUID, event questionnaire.Event) (*View, error) {
	return m.mutate(id, func(s *session) error {
		return s.wizard.Fire(event)
	})
}

func (m *manager) Submit(ctx context.Context, id uuid.UUID) (*SubmitResult, error) {
	s, err := m.find(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.presentation != nil {
		return nil, ErrAlreadySubmitted
	}

	q, err := s.wizard.Submit()
	if err != nil {
		return nil, err
	}

	p, err := m.presentations.Create(ctx, q, s.wizard.Analysis)
	if err != nil {
		return nil, err
	}

	s.presentation = &p.ID
	s.touch(m.now())

	m.logger.Info("session submitted", "session", id, "presentation", p.ID, "source", p.Source)
	return &SubmitResult{Session: s.view(), Presentation: p}, nil
}

func (m *manager) find(id uuid.UUID) (*session, error) {
	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *manager) mutate(id uuid.UUID, fn func(*session) error) (*View, error) {
	s, err := m.find(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.presentation != nil {
		return nil, ErrAlreadySubmitted
	}
	if err := fn(s); err != nil {
		return nil, err
	}
	s.touch(m.now())
	return s.view(), nil
}

func (s *session) touch(now time.Time) {
	s.updatedAt = now.UTC()
}
