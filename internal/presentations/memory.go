package presentations

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/JaimeStill/brand-lab/pkg/pagination"
	"github.com/JaimeStill/brand-lab/pkg/query"
)

type memoryStore struct {
	cache      *lru.Cache[uuid.UUID, *Presentation]
	pagination pagination.Config

	mu     sync.RWMutex
	latest uuid.UUID
}

// NewMemoryStore creates a bounded in-memory store. The least recently
// used presentation is evicted once capacity is reached.
func NewMemoryStore(capacity int, cfg pagination.Config) (Store, error) {
	cache, err := lru.New[uuid.UUID, *Presentation](capacity)
	if err != nil {
		return nil, fmt.Errorf("create presentation cache: %w", err)
	}
	return &memoryStore{cache: cache, pagination: cfg}, nil
}

func (s *memoryStore) Put(ctx context.Context, p *Presentation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache.Contains(p.ID) {
		return ErrDuplicate
	}
	s.cache.Add(p.ID, p)
	s.latest = p.ID
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id uuid.UUID) (*Presentation, error) {
	p, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *memoryStore) Latest(ctx context.Context) (*Presentation, error) {
	s.mu.RLock()
	id := s.latest
	s.mu.RUnlock()

	if id == uuid.Nil {
		return nil, ErrNotFound
	}
	p, ok := s.cache.Peek(id)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *memoryStore) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Summary], error) {
	page.Normalize(s.pagination)

	var items []Summary
	for _, p := range s.cache.Values() {
		if page.Search != nil && !strings.Contains(strings.ToLower(p.CompanyName), strings.ToLower(*page.Search)) {
			continue
		}
		items = append(items, p.summary())
	}

	sortSummaries(items, page.Sort)

	total := len(items)
	start := min(page.Offset(), total)
	end := min(start+page.PageSize, total)

	result := pagination.NewPageResult(items[start:end], total, page.Page, page.PageSize)
	return &result, nil
}

func sortSummaries(items []Summary, fields []query.SortField) {
	if len(fields) == 0 {
		fields = []query.SortField{defaultSort}
	}

	slices.SortStableFunc(items, func(a, b Summary) int {
		for _, f := range fields {
			var c int
			switch f.Field {
			case "companyName":
				c = cmp.Compare(a.CompanyName, b.CompanyName)
			case "source":
				c = cmp.Compare(a.Source, b.Source)
			case "createdAt":
				c = a.CreatedAt.Compare(b.CreatedAt)
			}
			if f.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}
