// Package scoring provides the weighted service scoring engine.
// Each catalog service is scored against the workload requirements on
// seven additive criteria with a combined maximum of 100 points.
package scoring

import (
	"strings"

	"azure-architect/catalog"
	"azure-architect/pkg/workload"
)

// Criterion point caps.
const (
	MaxFunctionalAlignment = 25
	MaxArchitecturalFit    = 20
	MaxComplianceMatch     = 15
	MaxIntegrationSynergy  = 15
	MaxCostEfficiency      = 10
	MaxIndustryRelevance   = 10
	MaxInnovationFactor    = 5

	// MaxTotal is the sum of all criterion caps.
	MaxTotal = 100
)

// Breakdown itemizes the score per criterion.
type Breakdown struct {
	FunctionalAlignment int `json:"functional_alignment"`
	ArchitecturalFit    int `json:"architectural_fit"`
	ComplianceMatch     int `json:"compliance_match"`
	IntegrationSynergy  int `json:"integration_synergy"`
	CostEfficiency      int `json:"cost_efficiency"`
	IndustryRelevance   int `json:"industry_relevance"`
	InnovationFactor    int `json:"innovation_factor"`
}

// Total sums the criterion scores.
func (b Breakdown) Total() int {
	return b.FunctionalAlignment + b.ArchitecturalFit + b.ComplianceMatch +
		b.IntegrationSynergy + b.CostEfficiency + b.IndustryRelevance + b.InnovationFactor
}

// Context carries the architecture assembled so far. Integration
// synergy is the only criterion that reads it.
type Context struct {
	SelectedServices []string
}

// innovativeServices receive the full innovation bonus.
var innovativeServices = map[string]bool{
	"Azure OpenAI Service":   true,
	"Microsoft Fabric":       true,
	"Azure Digital Twins":    true,
	"Azure Container Apps":   true,
	"Azure Machine Learning": true,
}

var importancePoints = map[catalog.Importance]int{
	catalog.ImportanceCritical: 20,
	catalog.ImportanceHigh:     15,
	catalog.ImportanceMedium:   10,
	catalog.ImportanceLow:      5,
}

var costTierPoints = map[catalog.CostTier]int{
	catalog.CostTierFree:     10,
	catalog.CostTierLow:      8,
	catalog.CostTierMedium:   6,
	catalog.CostTierHigh:     3,
	catalog.CostTierVariable: 5,
}

// Engine scores services against requirements. It is stateless apart
// from the catalog's industry profiles.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine creates a scoring engine backed by the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Score computes the total score and per-criterion breakdown for one
// service. It never fails; absent requirement fields score neutrally.
func (e *Engine) Score(svc catalog.Service, req workload.Requirements, archCtx Context) (int, Breakdown) {
	var b Breakdown

	useCaseText := normalize(req.UseCase)

	// Functional alignment: capability matches weigh 4, use-case text
	// hits weigh 3.
	capabilityMatches := 0
	for _, name := range req.SelectedCapabilities() {
		if capabilityMatchesService(name, svc.UseCases) {
			capabilityMatches++
		}
	}
	textMatches := 0
	for _, uc := range svc.UseCases {
		if strings.Contains(useCaseText, normalize(uc)) {
			textMatches += 3
		}
	}
	b.FunctionalAlignment = min(MaxFunctionalAlignment, capabilityMatches*4+textMatches)

	// Architectural fit.
	if pts, ok := importancePoints[svc.Importance]; ok {
		b.ArchitecturalFit = pts
	} else {
		b.ArchitecturalFit = importancePoints[catalog.ImportanceMedium]
	}

	// Compliance match: 3 per matched framework, +6 when the service
	// is on the industry's required list.
	if profile, ok := e.cat.Industry(req.Industry); ok {
		pts := 0
		for _, framework := range profile.ComplianceFrameworks {
			if containsString(svc.Compliance, framework) {
				pts += 3
			}
		}
		if containsString(profile.RequiredServices, svc.Name) {
			pts += 6
		}
		b.ComplianceMatch = min(MaxComplianceMatch, pts)
	}

	// Integration synergy: 2 per already-selected service that carries
	// one of this service's integration partners in its name.
	synergy := 0
	for _, selected := range archCtx.SelectedServices {
		for _, partner := range svc.IntegratesWith {
			if strings.Contains(selected, partner) {
				synergy += 2
				break
			}
		}
	}
	b.IntegrationSynergy = min(MaxIntegrationSynergy, synergy)

	// Cost efficiency.
	if pts, ok := costTierPoints[svc.CostTier]; ok {
		b.CostEfficiency = pts
	} else {
		b.CostEfficiency = costTierPoints[catalog.CostTierMedium]
	}

	// Industry relevance from the profile's category priorities, with
	// a framework-carrying fallback.
	b.IndustryRelevance = e.industryRelevance(svc, req.Industry)

	// Innovation factor.
	switch {
	case innovativeServices[svc.Name]:
		b.InnovationFactor = 5
	case svc.Category == "AI & Machine Learning":
		b.InnovationFactor = 3
	}

	return b.Total(), b
}

func (e *Engine) industryRelevance(svc catalog.Service, industry string) int {
	profile, ok := e.cat.Industry(industry)
	if !ok {
		return 0
	}
	if pts, ok := profile.CategoryPriorities[svc.Category]; ok {
		return min(MaxIndustryRelevance, pts)
	}
	for _, framework := range profile.ComplianceFrameworks {
		if containsString(svc.Compliance, framework) {
			return 8
		}
	}
	return 0
}

// normalize lowercases and folds separators so free text like
// "real-time analytics" lines up with tags like "real_time".
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// capabilityMatchesService reports whether a selected capability lines
// up with any of the service's use-case tags, in either direction.
func capabilityMatchesService(capability string, useCases []string) bool {
	name := normalize(capability)
	for _, uc := range useCases {
		tag := normalize(uc)
		if strings.Contains(name, tag) || strings.Contains(tag, name) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
