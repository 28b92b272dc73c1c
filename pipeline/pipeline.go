package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/schemalens/schemalens"
	"github.com/schemalens/schemalens/schemamodel"
	"github.com/schemalens/schemalens/validator"
)

// Generator produces candidate view specifications. The LLM-backed
// implementation lives outside this module; tests and the CLI use Static.
type Generator interface {
	Generate(ctx context.Context, numViews int) ([]schemalens.ViewDefinition, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, numViews int) ([]schemalens.ViewDefinition, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, numViews int) ([]schemalens.ViewDefinition, error) {
	return f(ctx, numViews)
}

// Static returns a generator that always yields the given views, ignoring
// the requested count.
func Static(views []schemalens.ViewDefinition) Generator {
	return GeneratorFunc(func(ctx context.Context, numViews int) ([]schemalens.ViewDefinition, error) {
		return views, nil
	})
}

// Summary aggregates counts over one pipeline run.
type Summary struct {
	TotalGenerated     int    `json:"total_generated"`
	AfterDeduplication int    `json:"after_deduplication"`
	DuplicatesRemoved  int    `json:"duplicates_removed"`
	Valid              int    `json:"valid"`
	Invalid            int    `json:"invalid"`
	SuccessRate        string `json:"success_rate"`
}

// AnalysisResult is the complete outcome of one pipeline run.
type AnalysisResult struct {
	RunID   string                        `json:"run_id"`
	Views   []schemalens.ValidationResult `json:"views"`
	Summary Summary                       `json:"summary"`
}

// Pipeline sequences generate, deduplicate, validate, and summarize. It
// contains no novel logic: every rule lives in the validator and the schema
// model. No retries or backoff live here; those belong to the generator.
type Pipeline struct {
	generator Generator
	validator *validator.Validator
}

// New creates a pipeline bound to a schema model and a view generator.
func New(model *schemamodel.Model, generator Generator, opts validator.Options) *Pipeline {
	return &Pipeline{
		generator: generator,
		validator: validator.New(model, opts),
	}
}

// Run executes the full pipeline. A generation failure aborts the run; every
// failure past generation is recorded per view, never raised.
func (p *Pipeline) Run(ctx context.Context, numViews int) (*AnalysisResult, error) {
	result := &AnalysisResult{RunID: uuid.NewString()}

	generated, err := p.generator.Generate(ctx, numViews)
	if err != nil {
		return nil, fmt.Errorf("view generation failed: %w", err)
	}

	result.Summary.TotalGenerated = len(generated)

	// Construction errors are fatal per item: the view is reported invalid
	// and takes no further part in deduplication or validation.
	var (
		normalized []schemalens.ViewDefinition
		rejected   []schemalens.ValidationResult
	)

	for _, view := range generated {
		if err := view.Normalize(); err != nil {
			rejected = append(rejected, schemalens.ValidationResult{
				ViewName: view.Name,
				Errors:   []string{err.Error()},
			})

			continue
		}

		normalized = append(normalized, view)
	}

	unique := validator.Deduplicate(normalized)

	result.Summary.AfterDeduplication = len(unique)
	result.Summary.DuplicatesRemoved = len(normalized) - len(unique)

	for _, view := range unique {
		verdict := p.validator.Validate(&view)
		result.Views = append(result.Views, verdict)

		if verdict.IsValid {
			result.Summary.Valid++
		} else {
			result.Summary.Invalid++
		}
	}

	result.Views = append(result.Views, rejected...)
	result.Summary.Invalid += len(rejected)

	if result.Summary.AfterDeduplication > 0 {
		rate := float64(result.Summary.Valid) / float64(result.Summary.AfterDeduplication) * 100
		result.Summary.SuccessRate = fmt.Sprintf("%.1f%%", rate)
	} else {
		result.Summary.SuccessRate = "0%"
	}

	return result, nil
}
