// Package patterns matches selected services against the reference
// architecture patterns and grades how completely each one is covered.
package patterns

import (
	"fmt"
	"sort"
	"strings"

	"azure-architect/catalog"
	"azure-architect/pkg/workload"
)

// Completeness grades pattern coverage.
type Completeness string

const (
	// Complete: all required services plus at least 70% of recommended.
	Complete Completeness = "complete"
	// CoreComplete: all required services present.
	CoreComplete Completeness = "core_complete"
	// MostlyComplete: at least 80% of required services.
	MostlyComplete Completeness = "mostly_complete"
	// PartiallyComplete: at least 50% of required services.
	PartiallyComplete Completeness = "partially_complete"
	// Minimal: everything below that.
	Minimal Completeness = "minimal"
)

// Match is one detected pattern with its coverage detail.
type Match struct {
	Key                 string       `json:"key"`
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	Completeness        Completeness `json:"completeness"`
	RequiredCoverage    string       `json:"required_coverage"`
	RecommendedCoverage string       `json:"recommended_coverage"`
	OptionalCoverage    int          `json:"optional_coverage"`
	MissingRequired     []string     `json:"missing_required"`
	MissingRecommended  []string     `json:"missing_recommended"`
	PatternScore        int          `json:"pattern_score"`
	Complexity          string       `json:"complexity"`
	Timeline            string       `json:"timeline"`
	UseCaseAlignment    int          `json:"use_case_alignment"`
}

// Detector evaluates the catalog's reference patterns.
type Detector struct {
	cat *catalog.Catalog
}

// NewDetector creates a pattern detector backed by the given catalog.
func NewDetector(cat *catalog.Catalog) *Detector {
	return &Detector{cat: cat}
}

// Detect returns the patterns relevant to the selection, best first.
// A pattern is relevant when its coverage is above minimal or its
// use-case tags align with the stated requirements.
func (d *Detector) Detect(selectedServices []string, req workload.Requirements) []Match {
	selected := make(map[string]bool, len(selectedServices))
	for _, name := range selectedServices {
		selected[name] = true
	}

	useCaseText := normalize(req.UseCase)
	capabilities := req.SelectedCapabilities()

	var matches []Match
	for _, pattern := range d.cat.Patterns() {
		requiredCov, missingRequired := coverage(pattern.RequiredServices, selected)
		recommendedCov, missingRecommended := coverage(pattern.RecommendedServices, selected)
		optionalCov, _ := coverage(pattern.OptionalServices, selected)

		completeness := grade(requiredCov, len(pattern.RequiredServices), recommendedCov, len(pattern.RecommendedServices))

		alignment := 0
		for _, tag := range pattern.UseCases {
			if tagAligns(tag, useCaseText, capabilities) {
				alignment++
			}
		}

		if completeness == Minimal && alignment == 0 {
			continue
		}

		matches = append(matches, Match{
			Key:                 pattern.Key,
			Name:                pattern.Name,
			Description:         pattern.Description,
			Completeness:        completeness,
			RequiredCoverage:    fmt.Sprintf("%d/%d", requiredCov, len(pattern.RequiredServices)),
			RecommendedCoverage: fmt.Sprintf("%d/%d", recommendedCov, len(pattern.RecommendedServices)),
			OptionalCoverage:    optionalCov,
			MissingRequired:     missingRequired,
			MissingRecommended:  missingRecommended,
			PatternScore:        requiredCov*3 + recommendedCov*2 + optionalCov + alignment*2,
			Complexity:          pattern.Complexity,
			Timeline:            pattern.EstimatedTimeline,
			UseCaseAlignment:    alignment,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].PatternScore > matches[j].PatternScore
	})
	return matches
}

func coverage(wanted []string, selected map[string]bool) (int, []string) {
	covered := 0
	missing := make([]string, 0)
	for _, name := range wanted {
		if selected[name] {
			covered++
		} else {
			missing = append(missing, name)
		}
	}
	return covered, missing
}

func grade(requiredCov, totalRequired, recommendedCov, totalRecommended int) Completeness {
	switch {
	case requiredCov == totalRequired:
		if float64(recommendedCov) >= float64(totalRecommended)*0.7 {
			return Complete
		}
		return CoreComplete
	case float64(requiredCov) >= float64(totalRequired)*0.8:
		return MostlyComplete
	case float64(requiredCov) >= float64(totalRequired)*0.5:
		return PartiallyComplete
	default:
		return Minimal
	}
}

func tagAligns(tag, useCaseText string, capabilities []string) bool {
	if strings.Contains(useCaseText, tag) {
		return true
	}
	for _, capability := range capabilities {
		if strings.Contains(normalize(capability), tag) {
			return true
		}
	}
	return false
}

// normalize folds separators so free text lines up with snake_case tags.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
