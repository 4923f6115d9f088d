package recommend

import (
	"strings"

	"azure-architect/catalog"
)

// BusinessValue estimates the qualitative benefits of a selection.
// Ratios are fractions of baseline (0.3 means a 30% improvement).
type BusinessValue struct {
	CostSavings       CostSavings       `json:"cost_savings"`
	ProductivityGains ProductivityGains `json:"productivity_gains"`
	InnovationEnable  InnovationEnable  `json:"innovation_enablers"`
	RiskMitigation    RiskMitigation    `json:"risk_mitigation"`
}

type CostSavings struct {
	InfrastructureReduction float64 `json:"infrastructure_reduction"`
	OperationalEfficiency   float64 `json:"operational_efficiency"`
	LicenseOptimization     float64 `json:"license_optimization"`
}

type ProductivityGains struct {
	DeveloperProductivity float64 `json:"developer_productivity"`
	DeploymentSpeed       float64 `json:"deployment_speed"`
	TimeToMarket          float64 `json:"time_to_market"`
}

type InnovationEnable struct {
	AIMLCapabilities  int `json:"ai_ml_capabilities"`
	AnalyticsMaturity int `json:"analytics_maturity"`
	SecurityPosture   int `json:"security_posture"`
}

type RiskMitigation struct {
	SecurityIncidents    float64 `json:"security_incidents"`
	ComplianceViolations float64 `json:"compliance_violations"`
	DowntimeReduction    float64 `json:"downtime_reduction"`
}

// CalculateBusinessValue derives benefit ratios from category counts.
// Each ratio grows with the relevant service count up to a fixed cap.
func CalculateBusinessValue(services []catalog.Service) BusinessValue {
	aiml := 0
	analytics := 0
	devops := 0
	security := 0
	monitoring := 0
	for _, svc := range services {
		if strings.Contains(svc.Category, "AI") {
			aiml++
		}
		if strings.Contains(svc.Category, "Analytics") {
			analytics++
		}
		if strings.Contains(svc.Category, "DevOps") {
			devops++
		}
		if strings.Contains(svc.Category, "Security") {
			security++
		}
		if strings.Contains(svc.Name, "Monitor") {
			monitoring++
		}
	}

	total := len(services)

	return BusinessValue{
		CostSavings: CostSavings{
			InfrastructureReduction: capped(0.1+float64(total)*0.02, 0.4),
			OperationalEfficiency:   capped(0.1+float64(devops)*0.05, 0.3),
			LicenseOptimization:     capped(0.1+float64(total)*0.01, 0.25),
		},
		ProductivityGains: ProductivityGains{
			DeveloperProductivity: capped(0.2+float64(devops)*0.1, 0.5),
			DeploymentSpeed:       capped(0.3+float64(devops)*0.15, 0.7),
			TimeToMarket:          capped(0.2+float64(aiml)*0.1, 0.5),
		},
		InnovationEnable: InnovationEnable{
			AIMLCapabilities:  aiml,
			AnalyticsMaturity: analytics,
			SecurityPosture:   security,
		},
		RiskMitigation: RiskMitigation{
			SecurityIncidents:    capped(float64(security)*0.2, 0.8),
			ComplianceViolations: capped(float64(security)*0.25, 0.9),
			DowntimeReduction:    capped(float64(monitoring)*0.3, 0.6),
		},
	}
}

func capped(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
