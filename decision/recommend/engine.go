// Package recommend orchestrates the decision engines into a single
// architecture recommendation report.
package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"azure-architect/catalog"
	"azure-architect/decision/cost"
	"azure-architect/decision/diagram"
	"azure-architect/decision/patterns"
	"azure-architect/decision/scoring"
	"azure-architect/decision/validation"
	"azure-architect/pkg/workload"
)

// Report is the complete recommendation for one set of requirements.
type Report struct {
	ID            uuid.UUID               `json:"id"`
	GeneratedAt   time.Time               `json:"generated_at"`
	Requirements  workload.Requirements   `json:"requirements"`
	Services      []scoring.ScoredService `json:"services"`
	Patterns      []patterns.Match        `json:"patterns"`
	Cost          cost.Analysis           `json:"cost"`
	Validation    validation.Result       `json:"validation"`
	BusinessValue BusinessValue           `json:"business_value"`
	Diagram       diagram.Diagram         `json:"diagram"`
}

// Engine wires the decision engines together.
type Engine struct {
	cat       *catalog.Catalog
	scorer    *scoring.Engine
	detector  *patterns.Detector
	analyzer  *cost.Analyzer
	validator *validation.Validator
	diagrams  *diagram.Generator
	logger    *zap.Logger
}

// NewEngine builds a recommendation engine over the given catalog.
func NewEngine(cat *catalog.Catalog, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cat:       cat,
		scorer:    scoring.NewEngine(cat),
		detector:  patterns.NewDetector(cat),
		analyzer:  cost.NewAnalyzer(),
		validator: validation.NewValidator(cat),
		diagrams:  diagram.NewGenerator(),
		logger:    logger,
	}
}

// Recommend produces a full report. The use case must be non-empty;
// all other requirement fields default sensibly.
func (e *Engine) Recommend(ctx context.Context, req workload.Requirements) (*Report, error) {
	if strings.TrimSpace(req.UseCase) == "" {
		return nil, fmt.Errorf("use case description is required")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid requirements: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req.ApplyDefaults()

	scored, archCtx := e.scorer.Select(req)
	e.logger.Debug("services selected",
		zap.Int("candidates", e.cat.Len()),
		zap.Int("selected", len(scored)))

	services := make([]catalog.Service, len(scored))
	for i, s := range scored {
		services[i] = s.Service
	}

	detected := e.detector.Detect(archCtx.SelectedServices, req)
	patternNames := make([]string, len(detected))
	for i, m := range detected {
		patternNames[i] = m.Name
	}

	report := &Report{
		ID:            uuid.New(),
		GeneratedAt:   time.Now().UTC(),
		Requirements:  req,
		Services:      scored,
		Patterns:      detected,
		Cost:          e.analyzer.Analyze(services, req),
		Validation:    e.validator.Validate(services, req),
		BusinessValue: CalculateBusinessValue(services),
		Diagram:       e.diagrams.Generate(services, patternNames),
	}

	e.logger.Info("recommendation generated",
		zap.String("report_id", report.ID.String()),
		zap.String("industry", req.Industry),
		zap.Int("services", len(scored)),
		zap.Int("patterns", len(detected)),
		zap.String("monthly_cost", report.Cost.TotalMonthly.StringFixed(2)))

	return report, nil
}
