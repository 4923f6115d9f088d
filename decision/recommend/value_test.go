package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azure-architect/catalog"
)

func TestCalculateBusinessValueEmpty(t *testing.T) {
	value := CalculateBusinessValue(nil)

	assert.InDelta(t, 0.1, value.CostSavings.InfrastructureReduction, 0.0001)
	assert.Zero(t, value.RiskMitigation.SecurityIncidents)
	assert.Zero(t, value.InnovationEnable.AIMLCapabilities)
}

func TestCalculateBusinessValueCounts(t *testing.T) {
	cat := catalog.MustLoad()

	names := []string{
		"Azure OpenAI Service", // AI & Machine Learning
		"Power BI",             // Analytics & BI
		"Azure DevOps",         // DevOps & Developer Tools
		"Azure Key Vault",      // Security & Identity
		"Azure Monitor",        // name counts toward monitoring
	}
	services := make([]catalog.Service, 0, len(names))
	for _, name := range names {
		svc, ok := cat.ByName(name)
		require.True(t, ok, "unknown service %s", name)
		services = append(services, svc)
	}

	value := CalculateBusinessValue(services)

	assert.InDelta(t, 0.20, value.CostSavings.InfrastructureReduction, 0.0001)
	assert.InDelta(t, 0.15, value.CostSavings.OperationalEfficiency, 0.0001)
	assert.InDelta(t, 0.15, value.CostSavings.LicenseOptimization, 0.0001)
	assert.InDelta(t, 0.30, value.ProductivityGains.DeveloperProductivity, 0.0001)
	assert.InDelta(t, 0.45, value.ProductivityGains.DeploymentSpeed, 0.0001)
	assert.InDelta(t, 0.30, value.ProductivityGains.TimeToMarket, 0.0001)
	assert.Equal(t, 1, value.InnovationEnable.AIMLCapabilities)
	assert.Equal(t, 1, value.InnovationEnable.AnalyticsMaturity)
	assert.Equal(t, 1, value.InnovationEnable.SecurityPosture)
	assert.InDelta(t, 0.20, value.RiskMitigation.SecurityIncidents, 0.0001)
	assert.InDelta(t, 0.25, value.RiskMitigation.ComplianceViolations, 0.0001)
	assert.InDelta(t, 0.30, value.RiskMitigation.DowntimeReduction, 0.0001)
}

func TestCalculateBusinessValueCaps(t *testing.T) {
	cat := catalog.MustLoad()

	security := cat.ByCategory("Security & Identity")
	require.GreaterOrEqual(t, len(security), 4)

	value := CalculateBusinessValue(security)
	assert.InDelta(t, 0.8, value.RiskMitigation.SecurityIncidents, 0.0001)
	assert.InDelta(t, 0.9, value.RiskMitigation.ComplianceViolations, 0.0001)
}
