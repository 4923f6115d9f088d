// Package cost provides rough-order-of-magnitude cost estimation for a
// selected service set. Estimates come from fixed per-tier baselines
// scaled by the workload sizing inputs, not from live pricing data.
package cost

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"azure-architect/catalog"
	"azure-architect/pkg/workload"
)

// Annual billing assumes a flat 15% commitment discount.
var annualDiscountFactor = decimal.NewFromFloat(0.85)

var twelve = decimal.NewFromInt(12)

// baseMonthly is the tier baseline in USD per month.
var baseMonthly = map[catalog.CostTier]decimal.Decimal{
	catalog.CostTierFree:     decimal.Zero,
	catalog.CostTierLow:      decimal.NewFromInt(75),
	catalog.CostTierMedium:   decimal.NewFromInt(350),
	catalog.CostTierHigh:     decimal.NewFromInt(1200),
	catalog.CostTierVariable: decimal.NewFromInt(200),
}

// ServiceEstimate is one service's cost line.
type ServiceEstimate struct {
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	CostTier        catalog.CostTier `json:"cost_tier"`
	ScalingFactor   decimal.Decimal  `json:"scaling_factor"`
	MonthlyEstimate decimal.Decimal  `json:"monthly_estimate"`
	AnnualEstimate  decimal.Decimal  `json:"annual_estimate"`
}

// CategoryTotal is the monthly sum for one category.
type CategoryTotal struct {
	Category     string          `json:"category"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
}

// ScalingAssumptions echoes the sizing inputs the estimate used.
type ScalingAssumptions struct {
	TeamSize          int    `json:"team_size"`
	DataVolumeGB      int    `json:"data_volume_gb"`
	ExpectedUsers     int    `json:"expected_users"`
	BudgetSensitivity string `json:"budget_sensitivity,omitempty"`
}

// Analysis is the full cost report for a service selection.
type Analysis struct {
	Services                []ServiceEstimate  `json:"services"`
	CategoryTotals          []CategoryTotal    `json:"category_totals"`
	TotalMonthly            decimal.Decimal    `json:"total_monthly"`
	TotalAnnual             decimal.Decimal    `json:"total_annual"`
	ScalingAssumptions      ScalingAssumptions `json:"scaling_assumptions"`
	OptimizationSuggestions []string           `json:"optimization_suggestions"`
}

// Analyzer estimates costs for selected services.
type Analyzer struct{}

// NewAnalyzer creates a cost analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze estimates monthly and annual spend for the selection.
// Scaling factors are floored at 1.0 so small workloads still pay the
// tier baseline.
func (a *Analyzer) Analyze(services []catalog.Service, req workload.Requirements) Analysis {
	analysis := Analysis{
		Services:     make([]ServiceEstimate, 0, len(services)),
		TotalMonthly: decimal.Zero,
		ScalingAssumptions: ScalingAssumptions{
			TeamSize:          req.TeamSize,
			DataVolumeGB:      req.DataVolumeGB,
			ExpectedUsers:     req.ExpectedUsers,
			BudgetSensitivity: req.BudgetSensitivity,
		},
	}

	categoryTotals := make(map[string]decimal.Decimal)

	for _, svc := range services {
		base, ok := baseMonthly[svc.CostTier]
		if !ok {
			base = baseMonthly[catalog.CostTierMedium]
		}

		factor := scalingFactor(svc.Category, req)
		monthly := base.Mul(factor).Round(2)
		annual := monthly.Mul(twelve).Mul(annualDiscountFactor).Round(2)

		analysis.Services = append(analysis.Services, ServiceEstimate{
			Name:            svc.Name,
			Category:        svc.Category,
			CostTier:        svc.CostTier,
			ScalingFactor:   factor.Round(2),
			MonthlyEstimate: monthly,
			AnnualEstimate:  annual,
		})

		analysis.TotalMonthly = analysis.TotalMonthly.Add(monthly)
		categoryTotals[svc.Category] = categoryTotals[svc.Category].Add(monthly)
	}

	analysis.TotalMonthly = analysis.TotalMonthly.Round(2)
	analysis.TotalAnnual = analysis.TotalMonthly.Mul(twelve).Mul(annualDiscountFactor).Round(2)

	for category, total := range categoryTotals {
		analysis.CategoryTotals = append(analysis.CategoryTotals, CategoryTotal{
			Category:     category,
			MonthlyTotal: total.Round(2),
		})
	}
	sort.Slice(analysis.CategoryTotals, func(i, j int) bool {
		return analysis.CategoryTotals[i].Category < analysis.CategoryTotals[j].Category
	})

	analysis.OptimizationSuggestions = a.optimizations(analysis)
	return analysis
}

// scalingFactor derives the multiplier for a category from the sizing
// inputs. Never below 1.0.
func scalingFactor(category string, req workload.Requirements) decimal.Decimal {
	users := decimal.NewFromInt(int64(req.ExpectedUsers))
	data := decimal.NewFromInt(int64(req.DataVolumeGB))
	team := decimal.NewFromInt(int64(req.TeamSize))

	var factor decimal.Decimal
	switch {
	case strings.Contains(category, "Analytics") || strings.Contains(category, "AI"):
		factor = data.Div(decimal.NewFromInt(100))
	case strings.Contains(category, "Compute") || strings.Contains(category, "Container"):
		factor = users.Div(decimal.NewFromInt(500))
	case strings.Contains(category, "Database"):
		factor = data.Div(decimal.NewFromInt(200)).Mul(users.Div(decimal.NewFromInt(1000)))
	case strings.Contains(category, "DevOps"):
		factor = team.Div(decimal.NewFromInt(5))
	default:
		factor = users.Div(decimal.NewFromInt(1000))
	}

	one := decimal.NewFromInt(1)
	if factor.LessThan(one) {
		return one
	}
	return factor
}

var serverlessAlternatives = []string{"Azure Functions", "Azure Container Apps", "Azure Logic Apps"}

func (a *Analyzer) optimizations(analysis Analysis) []string {
	suggestions := make([]string, 0)

	reservedThreshold := decimal.NewFromInt(500)
	var highCost []string
	for _, svc := range analysis.Services {
		if svc.MonthlyEstimate.GreaterThan(reservedThreshold) {
			highCost = append(highCost, svc.Name)
		}
	}
	if len(highCost) > 0 {
		if len(highCost) > 3 {
			highCost = highCost[:3]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Consider reserved instances for high-cost services: %s", strings.Join(highCost, ", ")))
	}

	if analysis.TotalMonthly.GreaterThan(decimal.NewFromInt(2000)) {
		suggestions = append(suggestions,
			"Explore Azure Hybrid Benefit for Windows and SQL Server licensing savings")
	}

	hasCompute := false
	hasServerless := false
	for _, svc := range analysis.Services {
		if strings.Contains(svc.Category, "Compute") {
			hasCompute = true
		}
		for _, alt := range serverlessAlternatives {
			if svc.Name == alt {
				hasServerless = true
			}
		}
	}
	if hasCompute && !hasServerless {
		suggestions = append(suggestions,
			"Consider serverless alternatives for variable workloads to optimize costs")
	}

	return suggestions
}
