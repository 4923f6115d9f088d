package cost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azure-architect/catalog"
	"azure-architect/pkg/workload"
)

func catalogServices(t *testing.T, names ...string) []catalog.Service {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	services := make([]catalog.Service, 0, len(names))
	for _, name := range names {
		svc, ok := cat.ByName(name)
		require.True(t, ok, "unknown service %s", name)
		services = append(services, svc)
	}
	return services
}

func baselineRequirements() workload.Requirements {
	return workload.Requirements{
		UseCase:       "test",
		TeamSize:      5,
		ExpectedUsers: 1000,
		DataVolumeGB:  100,
	}
}

func TestAnalyzeBaselineTiers(t *testing.T) {
	analyzer := NewAnalyzer()

	// With baseline sizing every scaling factor lands on 1.0 except
	// Databases and the default bucket, which also resolve to 1.0.
	services := catalogServices(t,
		"Azure Policy",           // free
		"Azure Key Vault",        // low
		"Power BI",               // medium
		"Azure NetApp Files",     // high
		"Azure Virtual Machines", // variable
	)

	analysis := analyzer.Analyze(services, baselineRequirements())
	require.Len(t, analysis.Services, 5)

	byName := make(map[string]ServiceEstimate)
	for _, est := range analysis.Services {
		byName[est.Name] = est
	}

	assert.True(t, byName["Azure Policy"].MonthlyEstimate.IsZero())
	assert.True(t, byName["Azure Key Vault"].MonthlyEstimate.Equal(decimal.NewFromInt(75)))
	assert.True(t, byName["Power BI"].MonthlyEstimate.Equal(decimal.NewFromInt(350)))
	assert.True(t, byName["Azure NetApp Files"].MonthlyEstimate.Equal(decimal.NewFromInt(1200)))
	assert.True(t, byName["Azure Virtual Machines"].MonthlyEstimate.Equal(decimal.NewFromInt(400)))
}

func TestScalingFactorFloor(t *testing.T) {
	// Tiny workloads never scale below 1.0.
	req := workload.Requirements{UseCase: "x", TeamSize: 1, ExpectedUsers: 1, DataVolumeGB: 1}

	for _, category := range []string{
		"Analytics & BI", "AI & Machine Learning", "Compute", "Containers",
		"Databases", "DevOps & Developer Tools", "Storage", "Networking",
	} {
		factor := scalingFactor(category, req)
		assert.True(t, factor.GreaterThanOrEqual(decimal.NewFromInt(1)),
			"category %s scaled below 1.0: %s", category, factor)
	}
}

func TestScalingFactorByCategory(t *testing.T) {
	req := workload.Requirements{UseCase: "x", TeamSize: 20, ExpectedUsers: 5000, DataVolumeGB: 1000}

	cases := map[string]string{
		"Analytics & BI":           "10",  // 1000/100
		"AI & Machine Learning":    "10",  // 1000/100
		"Compute":                  "10",  // 5000/500
		"Containers":               "10",  // 5000/500
		"Databases":                "25",  // (1000/200)*(5000/1000)
		"DevOps & Developer Tools": "4",   // 20/5
		"Storage":                  "5",   // 5000/1000 default
	}
	for category, want := range cases {
		factor := scalingFactor(category, req)
		expected, err := decimal.NewFromString(want)
		require.NoError(t, err)
		assert.True(t, factor.Equal(expected), "category %s: got %s want %s", category, factor, want)
	}
}

func TestAnnualDiscount(t *testing.T) {
	analyzer := NewAnalyzer()

	services := catalogServices(t, "Azure Key Vault")
	analysis := analyzer.Analyze(services, baselineRequirements())

	// 75 * 12 * 0.85 = 765.
	assert.True(t, analysis.TotalAnnual.Equal(decimal.NewFromInt(765)),
		"got %s", analysis.TotalAnnual)
}

func TestCategoryTotals(t *testing.T) {
	analyzer := NewAnalyzer()

	services := catalogServices(t, "Azure Key Vault", "Azure Active Directory", "Power BI")
	analysis := analyzer.Analyze(services, baselineRequirements())

	require.Len(t, analysis.CategoryTotals, 2)
	// Sorted by category name.
	assert.Equal(t, "Analytics & BI", analysis.CategoryTotals[0].Category)
	assert.Equal(t, "Security & Identity", analysis.CategoryTotals[1].Category)
	// Key Vault (low, 75) + Active Directory (variable, 200).
	assert.True(t, analysis.CategoryTotals[1].MonthlyTotal.Equal(decimal.NewFromInt(275)))
}

func TestOptimizationSuggestions(t *testing.T) {
	analyzer := NewAnalyzer()

	t.Run("reserved instances for expensive services", func(t *testing.T) {
		services := catalogServices(t, "Azure NetApp Files")
		analysis := analyzer.Analyze(services, baselineRequirements())
		require.NotEmpty(t, analysis.OptimizationSuggestions)
		assert.Contains(t, analysis.OptimizationSuggestions[0], "reserved instances")
		assert.Contains(t, analysis.OptimizationSuggestions[0], "Azure NetApp Files")
	})

	t.Run("hybrid benefit above monthly threshold", func(t *testing.T) {
		services := catalogServices(t, "Azure NetApp Files", "Azure Synapse Analytics")
		analysis := analyzer.Analyze(services, baselineRequirements())
		found := false
		for _, s := range analysis.OptimizationSuggestions {
			if s == "Explore Azure Hybrid Benefit for Windows and SQL Server licensing savings" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("serverless alternative for compute without serverless", func(t *testing.T) {
		services := catalogServices(t, "Azure Virtual Machines")
		analysis := analyzer.Analyze(services, baselineRequirements())
		assert.Contains(t, analysis.OptimizationSuggestions,
			"Consider serverless alternatives for variable workloads to optimize costs")
	})

	t.Run("no serverless suggestion when serverless present", func(t *testing.T) {
		services := catalogServices(t, "Azure Virtual Machines", "Azure Functions")
		analysis := analyzer.Analyze(services, baselineRequirements())
		assert.NotContains(t, analysis.OptimizationSuggestions,
			"Consider serverless alternatives for variable workloads to optimize costs")
	})
}

func TestScalingAssumptionsEcho(t *testing.T) {
	analyzer := NewAnalyzer()

	req := workload.Requirements{
		UseCase:           "x",
		TeamSize:          12,
		ExpectedUsers:     2500,
		DataVolumeGB:      750,
		BudgetSensitivity: "high",
	}
	analysis := analyzer.Analyze(nil, req)
	assert.Equal(t, 12, analysis.ScalingAssumptions.TeamSize)
	assert.Equal(t, 2500, analysis.ScalingAssumptions.ExpectedUsers)
	assert.Equal(t, 750, analysis.ScalingAssumptions.DataVolumeGB)
	assert.Equal(t, "high", analysis.ScalingAssumptions.BudgetSensitivity)
}
