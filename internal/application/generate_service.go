package application

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/docforge/docforge/internal/domain"
)

// GenerateService orchestrates the documentation pipeline:
// load → validate → inject metadata → write → re-validate → report.
type GenerateService struct {
	store   domain.DocumentStore
	commits domain.CommitResolver
}

// NewGenerateService creates a GenerateService with its required adapters.
func NewGenerateService(store domain.DocumentStore, commits domain.CommitResolver) *GenerateService {
	return &GenerateService{store: store, commits: commits}
}

// RunOptions parameterizes one pipeline run.
type RunOptions struct {
	// ProjectPath is the directory consulted for version-control metadata.
	ProjectPath  string
	TemplatePath string
	OutputPath   string
	ReportPath   string
	Metadata     domain.MetadataConfig

	// SkipValidation generates even when required sections are missing.
	// The validation result is still computed and reported.
	SkipValidation bool
}

// Load reads template text. Terminal for the run on failure.
func (s *GenerateService) Load(path string) (string, error) {
	return s.store.ReadTemplate(path)
}

// Generate injects the metadata block into content and writes the document.
func (s *GenerateService) Generate(content, outputPath string, meta domain.Metadata) error {
	return s.store.WriteDocument(outputPath, meta.Inject(content))
}

// ValidateGenerated re-reads the written document and recomputes the
// seven-point check from its text.
func (s *GenerateService) ValidateGenerated(outputPath string) (*domain.GeneratedCheck, error) {
	content, err := s.store.ReadTemplate(outputPath)
	if err != nil {
		return nil, fmt.Errorf("reading generated document: %w", err)
	}
	return domain.InspectGenerated(content), nil
}

// WriteReport persists the validation report. Failure is fatal for the run.
func (s *GenerateService) WriteReport(report *domain.ValidationReport, reportPath string) error {
	return s.store.WriteReport(reportPath, report)
}

// Run executes the full pipeline. It returns the report in all cases where
// validation ran, alongside ErrValidationFailed when missing sections abort
// generation.
func (s *GenerateService) Run(opts RunOptions) (*domain.ValidationReport, error) {
	content, err := s.Load(opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	result := domain.ValidateTemplate(content)
	log.Debug().
		Bool("valid", result.Valid).
		Int("warnings", len(result.Warnings)).
		Str("template", opts.TemplatePath).
		Msg("template validated")

	if !result.Valid && !opts.SkipValidation {
		report := domain.NewReport(opts.TemplatePath, opts.OutputPath, result, nil)
		return report, fmt.Errorf("%w: %d missing section(s)", domain.ErrValidationFailed, len(result.Errors))
	}

	meta := domain.Metadata{
		GeneratedAt: time.Now(),
		Version:     opts.Metadata.Version,
		Placement:   opts.Metadata.Placement,
	}
	if s.commits != nil && s.commits.IsRepo(opts.ProjectPath) {
		if hash, err := s.commits.CommitHash(opts.ProjectPath); err == nil {
			meta.Commit = hash
		}
	}

	if err := s.Generate(content, opts.OutputPath, meta); err != nil {
		return nil, err
	}
	log.Info().Str("output", opts.OutputPath).Msg("documentation generated")

	check, err := s.ValidateGenerated(opts.OutputPath)
	if err != nil {
		return nil, err
	}

	report := domain.NewReport(opts.TemplatePath, opts.OutputPath, result, check)
	if err := s.WriteReport(report, opts.ReportPath); err != nil {
		return report, err
	}
	log.Info().Str("report", opts.ReportPath).Msg("validation report written")

	return report, nil
}
