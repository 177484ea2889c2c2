package query_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/brand-lab/pkg/query"
)

func projection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "presentations", "p").
		Project("id", "id").
		Project("company_name", "companyName").
		Project("source", "source").
		Project("created_at", "createdAt")
}

func TestProjectionMap(t *testing.T) {
	pm := projection()

	if pm.Table() != "public.presentations p" {
		t.Errorf("Table() = %q", pm.Table())
	}
	if pm.Column("companyName") != "p.company_name" {
		t.Errorf("Column(companyName) = %q", pm.Column("companyName"))
	}
	if pm.Column("unknown") != "unknown" {
		t.Errorf("Column(unknown) = %q, want input", pm.Column("unknown"))
	}
	if pm.Columns() != "p.id, p.company_name, p.source, p.created_at" {
		t.Errorf("Columns() = %q", pm.Columns())
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		input string
		want  []query.SortField
	}{
		{"", nil},
		{"companyName", []query.SortField{{Field: "companyName"}}},
		{"-createdAt, companyName", []query.SortField{
			{Field: "createdAt", Descending: true},
			{Field: "companyName"},
		}},
		{" , -id,", []query.SortField{{Field: "id", Descending: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseSortFields(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	search := "acme"
	source := "analysis"

	qb := query.NewBuilder(projection(), query.SortField{Field: "createdAt", Descending: true}).
		WhereSearch(&search, "companyName").
		WhereEquals("source", source)

	sql, args := qb.BuildPage(2, 10)

	want := "SELECT p.id, p.company_name, p.source, p.created_at FROM public.presentations p" +
		" WHERE (p.company_name ILIKE $1) AND p.source = $2" +
		" ORDER BY p.created_at DESC LIMIT 10 OFFSET 10"
	if sql != want {
		t.Errorf("BuildPage() sql =\n%s\nwant\n%s", sql, want)
	}
	if diff := cmp.Diff([]any{"%acme%", "analysis"}, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_OrderByFields_DropsUnknown(t *testing.T) {
	qb := query.NewBuilder(projection(), query.SortField{Field: "createdAt"}).
		OrderByFields([]query.SortField{
			{Field: "companyName"},
			{Field: "1; DROP TABLE presentations", Descending: true},
		})

	sql, _ := qb.BuildPage(1, 5)
	want := "SELECT p.id, p.company_name, p.source, p.created_at FROM public.presentations p ORDER BY p.company_name ASC LIMIT 5 OFFSET 0"
	if sql != want {
		t.Errorf("BuildPage() = %q, want %q", sql, want)
	}
}

func TestBuilder_BuildCountAndSingle(t *testing.T) {
	qb := query.NewBuilder(projection(), query.SortField{Field: "createdAt"})

	if sql, args := qb.BuildCount(); sql != "SELECT COUNT(*) FROM public.presentations p" || len(args) != 0 {
		t.Errorf("BuildCount() = %q, %v", sql, args)
	}

	sql, args := qb.BuildSingle("id", "abc")
	want := "SELECT p.id, p.company_name, p.source, p.created_at FROM public.presentations p WHERE p.id = $1"
	if sql != want || len(args) != 1 {
		t.Errorf("BuildSingle() = %q, %v", sql, args)
	}
}
