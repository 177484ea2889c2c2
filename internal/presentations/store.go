package presentations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/brand-lab/pkg/pagination"
)

// Summary is the list view of a presentation.
type Summary struct {
	ID          uuid.UUID `json:"id"`
	Source      Source    `json:"source"`
	CompanyName string    `json:"companyName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store persists presentations. Latest returns the most recently stored one.
type Store interface {
	Put(ctx context.Context, p *Presentation) error
	Get(ctx context.Context, id uuid.UUID) (*Presentation, error)
	Latest(ctx context.Context) (*Presentation, error)
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Summary], error)
}

func (p *Presentation) summary() Summary {
	return Summary{
		ID:          p.ID,
		Source:      p.Source,
		CompanyName: p.CompanyName,
		CreatedAt:   p.CreatedAt,
	}
}
