// Package sessions keeps questionnaire wizards in memory and exposes them
// over HTTP. Each session owns a Wizard; mutation of one session is
// serialized while different sessions proceed independently.
package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/documents"
	"github.com/JaimeStill/brand-lab/internal/questionnaire"
)

type session struct {
	mu           sync.Mutex
	id           uuid.UUID
	wizard       *questionnaire.Wizard
	presentation *uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

// View is the client representation of a session.
type View struct {
	ID             uuid.UUID                    `json:"id"`
	Step           questionnaire.Step           `json:"step"`
	Answers        questionnaire.Questionnaire  `json:"answers"`
	Edited         []string                     `json:"edited"`
	Document       *documents.Document          `json:"document,omitempty"`
	Analysis       *analysis.BrandAnalysis      `json:"analysis,omitempty"`
	AnalysisError  *questionnaire.AnalysisError `json:"analysisError,omitempty"`
	PresentationID *uuid.UUID                   `json:"presentationId,omitempty"`
	CreatedAt      time.Time                    `json:"createdAt"`
	UpdatedAt      time.Time                    `json:"updatedAt"`
}

// view must be called with s.mu held.
func (s *session) view() *View {
	return &View{
		ID:             s.id,
		Step:           s.wizard.Step,
		Answers:        s.wizard.Answers,
		Edited:         s.wizard.Edited(),
		Document:       s.wizard.Document,
		Analysis:       s.wizard.Analysis,
		AnalysisError:  s.wizard.AnalysisError,
		PresentationID: s.presentation,
		CreatedAt:      s.createdAt,
		UpdatedAt:      s.updatedAt,
	}
}

func hints(q questionnaire.Questionnaire) *analysis.Hints {
	h := analysis.Hints{
		CompanyName:      q.CompanyName,
		Industry:         q.Industry,
		TargetAudience:   q.TargetAudience,
		BrandPersonality: q.BrandPersonality,
		PreferredStyle:   q.PreferredStyle,
		KeyFeatures:      q.KeyFeatures,
		CallToAction:     q.CallToAction,
	}
	if h == (analysis.Hints{}) {
		return nil
	}
	return &h
}
