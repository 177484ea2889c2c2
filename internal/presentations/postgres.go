package presentations

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/JaimeStill/brand-lab/pkg/pagination"
	"github.com/JaimeStill/brand-lab/pkg/query"
	"github.com/JaimeStill/brand-lab/pkg/repository"
)

// Migrations holds the presentations schema for golang-migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations holding the SQL files.
const MigrationsDir = "migrations"

var summaryProjection = query.
	NewProjectionMap("public", "presentations", "p").
	Project("id", "id").
	Project("source", "source").
	Project("company_name", "companyName").
	Project("created_at", "createdAt")

var presentationProjection = query.
	NewProjectionMap("public", "presentations", "p").
	Project("id", "id").
	Project("source", "source").
	Project("company_name", "companyName").
	Project("content", "content").
	Project("created_at", "createdAt")

var defaultSort = query.SortField{Field: "createdAt", Descending: true}

type postgresStore struct {
	db         repository.Querier
	pagination pagination.Config
}

// NewPostgresStore creates a store over the presentations table. db may be
// a *sql.DB or a *sql.Tx.
func NewPostgresStore(db repository.Querier, cfg pagination.Config) Store {
	return &postgresStore{db: db, pagination: cfg}
}

func (s *postgresStore) Put(ctx context.Context, p *Presentation) error {
	content, err := json.Marshal(p.Content)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}

	q := `
		INSERT INTO presentations(id, source, company_name, content, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = s.db.ExecContext(ctx, q, p.ID, string(p.Source), p.CompanyName, string(content), p.CreatedAt)
	return repository.MapError(err, ErrNotFound, ErrDuplicate)
}

func (s *postgresStore) Get(ctx context.Context, id uuid.UUID) (*Presentation, error) {
	q, args := query.NewBuilder(presentationProjection, defaultSort).BuildSingle("id", id)

	p, err := repository.QueryOne(ctx, s.db, q, args, scanPresentation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (s *postgresStore) Latest(ctx context.Context) (*Presentation, error) {
	q, args := query.NewBuilder(presentationProjection, defaultSort).BuildPage(1, 1)

	p, err := repository.QueryOne(ctx, s.db, q, args, scanPresentation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (s *postgresStore) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Summary], error) {
	page.Normalize(s.pagination)

	qb := query.
		NewBuilder(summaryProjection, defaultSort).
		WhereSearch(page.Search, "companyName")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count presentations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, s.db, pageSQL, pageArgs, scanSummary)
	if err != nil {
		return nil, fmt.Errorf("query presentations: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func scanSummary(s repository.Scanner) (Summary, error) {
	var out Summary
	err := s.Scan(&out.ID, &out.Source, &out.CompanyName, &out.CreatedAt)
	return out, err
}

func scanPresentation(s repository.Scanner) (Presentation, error) {
	var (
		p       Presentation
		content []byte
	)
	if err := s.Scan(&p.ID, &p.Source, &p.CompanyName, &content, &p.CreatedAt); err != nil {
		return p, err
	}
	if err := json.Unmarshal(content, &p.Content); err != nil {
		return p, fmt.Errorf("decode content: %w", err)
	}
	return p, nil
}
