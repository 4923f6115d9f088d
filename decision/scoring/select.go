package scoring

import (
	"sort"

	"azure-architect/catalog"
	"azure-architect/pkg/workload"
)

// Selection thresholds.
const (
	// MinRelevantScore is the score a service must exceed to be kept.
	MinRelevantScore = 10
	// MaxSelected caps the recommended service count.
	MaxSelected = 20
)

// ScoredService pairs a catalog service with its score.
type ScoredService struct {
	Service   catalog.Service `json:"service"`
	Score     int             `json:"score"`
	Breakdown Breakdown       `json:"breakdown"`
}

// Select scores every catalog service against the requirements and
// returns the relevant ones, best first. Every service is scored with
// an empty architecture context; the selected names are filled into
// the returned context afterwards rather than re-scored, so the result
// is a single deterministic ranking.
func (e *Engine) Select(req workload.Requirements) ([]ScoredService, Context) {
	scored := make([]ScoredService, 0, e.cat.Len())
	for _, svc := range e.cat.Services() {
		total, breakdown := e.Score(svc, req, Context{})
		if total > MinRelevantScore {
			scored = append(scored, ScoredService{
				Service:   svc,
				Score:     total,
				Breakdown: breakdown,
			})
		}
	}

	// Equal scores order by name so rankings are stable across runs.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Service.Name < scored[j].Service.Name
	})

	if len(scored) > MaxSelected {
		scored = scored[:MaxSelected]
	}

	archCtx := Context{SelectedServices: make([]string, len(scored))}
	for i, s := range scored {
		archCtx.SelectedServices[i] = s.Service.Name
	}
	return scored, archCtx
}
