package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/brand-lab/internal/analysis"
	"github.com/JaimeStill/brand-lab/internal/presentations"
	"github.com/JaimeStill/brand-lab/internal/questionnaire"
	"github.com/JaimeStill/brand-lab/pkg/pagination"
)

func init() {
	registerSeeder(&PresentationSeeder{})
}

// PresentationSeedData represents the JSON structure for presentation seed files.
type PresentationSeedData struct {
	Presentations []struct {
		Questionnaire questionnaire.Questionnaire `json:"questionnaire"`
		Analysis      *analysis.BrandAnalysis     `json:"analysis,omitempty"`
	} `json:"presentations"`
}

// PresentationSeeder assembles sample presentations and stores them.
// Each run inserts new rows; entries carry no fixed ids.
type PresentationSeeder struct {
	file   string
	logger *slog.Logger
}

func (s *PresentationSeeder) Name() string {
	return "presentations"
}

func (s *PresentationSeeder) Description() string {
	return "Seeds sample landing page presentations"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *PresentationSeeder) SetFile(path string) {
	s.file = path
}

func (s *PresentationSeeder) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Seed runs every entry through the assembler so seeded rows satisfy the
// same validation as API-created presentations.
func (s *PresentationSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}

	sys := presentations.New(presentations.NewPostgresStore(tx, pagination.Config{}), nil, logger)

	for i, entry := range data.Presentations {
		p, err := sys.Create(ctx, entry.Questionnaire, entry.Analysis)
		if err != nil {
			return fmt.Errorf("presentation %d (%s): %w", i+1, entry.Questionnaire.CompanyName, err)
		}
		fmt.Printf("  seeded %s (%s)\n", p.CompanyName, p.ID)
	}

	return nil
}

func (s *PresentationSeeder) loadSeedData() (*PresentationSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/presentations.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data PresentationSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}
