// Package presentations assembles landing page presentations from a
// submitted questionnaire and stores them for rendering.
package presentations

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/brand-lab/internal/analysis"
)

// Source records which input produced a presentation's content.
type Source string

const (
	SourceAnalysis      Source = "analysis"
	SourceQuestionnaire Source = "questionnaire"
)

// Presentation is an immutable landing page record. Content is either the
// AI analysis verbatim or a synthesis of the questionnaire, never a merge.
type Presentation struct {
	ID          uuid.UUID              `json:"id"`
	Source      Source                 `json:"source"`
	CompanyName string                 `json:"companyName"`
	Content     analysis.BrandAnalysis `json:"content"`
	CreatedAt   time.Time              `json:"createdAt"`
}
