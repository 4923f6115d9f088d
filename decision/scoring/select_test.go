package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azure-architect/pkg/workload"
)

func TestSelectOrdering(t *testing.T) {
	engine := newEngine(t)

	req := workload.Requirements{
		UseCase:  "modern data platform for real-time analytics with ai capabilities",
		Industry: "financial",
	}
	scored, _ := engine.Select(req)
	require.NotEmpty(t, scored)

	for i := 1; i < len(scored); i++ {
		prev, curr := scored[i-1], scored[i]
		assert.GreaterOrEqual(t, prev.Score, curr.Score)
		if prev.Score == curr.Score {
			assert.Less(t, prev.Service.Name, curr.Service.Name,
				"equal scores must order by name")
		}
	}
}

func TestSelectThresholdAndCap(t *testing.T) {
	engine := newEngine(t)

	scored, _ := engine.Select(workload.Requirements{UseCase: "anything"})
	assert.LessOrEqual(t, len(scored), MaxSelected)
	for _, s := range scored {
		assert.Greater(t, s.Score, MinRelevantScore)
	}
}

func TestSelectFillsContextPostHoc(t *testing.T) {
	engine := newEngine(t)

	scored, archCtx := engine.Select(workload.Requirements{UseCase: "analytics"})
	require.Equal(t, len(scored), len(archCtx.SelectedServices))
	for i, s := range scored {
		assert.Equal(t, s.Service.Name, archCtx.SelectedServices[i])
	}

	// Context is filled after ranking, not fed back into it: every
	// retained breakdown has zero synergy.
	for _, s := range scored {
		assert.Zero(t, s.Breakdown.IntegrationSynergy)
	}
}

func TestSelectRanksDomainServicesAboveBaseline(t *testing.T) {
	engine := newEngine(t)

	req := workload.Requirements{
		UseCase:  "real-time analytics",
		Industry: "healthcare",
		Capabilities: map[string]bool{
			"Real-time Analytics": true,
		},
	}
	scored, _ := engine.Select(req)

	rank := make(map[string]int)
	for i, s := range scored {
		rank[s.Service.Name] = i + 1
	}

	streamRank, ok := rank["Azure Stream Analytics"]
	require.True(t, ok, "Azure Stream Analytics must be selected")
	keyVaultRank, ok := rank["Azure Key Vault"]
	require.True(t, ok, "Azure Key Vault must be selected")

	if vmRank, ok := rank["Azure Virtual Machines"]; ok {
		assert.Less(t, streamRank, vmRank)
		assert.Less(t, keyVaultRank, vmRank)
	}
}

func TestSelectDeterministic(t *testing.T) {
	engine := newEngine(t)

	req := workload.Requirements{
		UseCase:  "iot telemetry with predictive analytics",
		Industry: "manufacturing",
		Capabilities: map[string]bool{
			"IoT Connectivity":     true,
			"Predictive Analytics": true,
		},
	}

	first, _ := engine.Select(req)
	second, _ := engine.Select(req)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("selection not deterministic (-first +second):\n%s", diff)
	}
}
