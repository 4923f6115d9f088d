// Package validation checks a selected architecture for structural and
// compliance gaps. Findings are advisory strings in three severities;
// the checks run in a fixed order so reports are deterministic.
package validation

import (
	"fmt"
	"strings"

	"azure-architect/catalog"
	"azure-architect/pkg/workload"
)

// Result holds the validation findings for one architecture.
type Result struct {
	CriticalGaps    []string `json:"critical_gaps"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
	ComplianceScore float64  `json:"compliance_score"`
}

// HasCriticalGaps reports whether any blocking finding was raised.
func (r Result) HasCriticalGaps() bool {
	return len(r.CriticalGaps) > 0
}

// Validator runs the architecture completeness checks.
type Validator struct {
	cat *catalog.Catalog
}

// NewValidator creates a validator backed by the given catalog.
func NewValidator(cat *catalog.Catalog) *Validator {
	return &Validator{cat: cat}
}

// Validate inspects the selection and returns all findings.
func (v *Validator) Validate(services []catalog.Service, req workload.Requirements) Result {
	result := Result{
		CriticalGaps:    make([]string, 0),
		Warnings:        make([]string, 0),
		Recommendations: make([]string, 0),
	}

	names := make(map[string]bool, len(services))
	categories := make(map[string]bool)
	for _, svc := range services {
		names[svc.Name] = true
		categories[svc.Category] = true
	}

	// Essential architecture components.
	if !categories["Security & Identity"] {
		result.CriticalGaps = append(result.CriticalGaps,
			"No identity and security services - critical security risk")
		result.Recommendations = append(result.Recommendations,
			"Add Azure Active Directory and Azure Key Vault for basic security")
	}
	if !categories["Monitoring & Management"] {
		result.CriticalGaps = append(result.CriticalGaps,
			"No monitoring solution - cannot observe system health")
		result.Recommendations = append(result.Recommendations,
			"Add Azure Monitor and Application Insights for observability")
	}

	// Data architecture.
	hasStorage := false
	for category := range categories {
		if strings.Contains(category, "Storage") || strings.Contains(category, "Database") {
			hasStorage = true
			break
		}
	}
	if categories["Analytics & BI"] && !hasStorage {
		result.Warnings = append(result.Warnings,
			"Analytics services without adequate storage layer")
		result.Recommendations = append(result.Recommendations,
			"Consider Azure Data Lake Storage for analytics workloads")
	}

	// Networking.
	hasCompute := categories["Compute"] || categories["Containers"]
	if hasCompute && !categories["Networking"] {
		result.Warnings = append(result.Warnings,
			"Compute services without network isolation")
		result.Recommendations = append(result.Recommendations,
			"Add Azure Virtual Network for security isolation")
	}

	// High availability.
	criticalCount := 0
	hasLoadBalancer := false
	for _, svc := range services {
		if svc.Importance == catalog.ImportanceCritical {
			criticalCount++
		}
		for _, uc := range svc.UseCases {
			if strings.Contains(uc, "load_balanc") {
				hasLoadBalancer = true
			}
		}
	}
	if criticalCount > 2 && !hasLoadBalancer {
		result.Warnings = append(result.Warnings,
			"No load balancing for high availability")
		result.Recommendations = append(result.Recommendations,
			"Consider Azure Load Balancer or Application Gateway")
	}

	// Industry-specific requirements.
	if profile, ok := v.cat.Industry(req.Industry); ok {
		var missing []string
		for _, required := range profile.RequiredServices {
			if !names[required] {
				missing = append(missing, required)
			}
		}
		if len(missing) > 0 {
			result.CriticalGaps = append(result.CriticalGaps,
				fmt.Sprintf("Missing required %s services: %s", req.Industry, strings.Join(missing, ", ")))
		}
	}

	// DevOps.
	if hasCompute && !categories["DevOps & Developer Tools"] {
		result.Recommendations = append(result.Recommendations,
			"Consider adding CI/CD tools like Azure DevOps or GitHub Actions")
	}

	// Cost posture.
	highCostCount := 0
	for _, svc := range services {
		if svc.CostTier == catalog.CostTierHigh {
			highCostCount++
		}
	}
	if highCostCount > 3 {
		result.Warnings = append(result.Warnings,
			"High number of expensive services - review cost optimization")
		result.Recommendations = append(result.Recommendations,
			"Consider serverless alternatives for variable workloads")
	}

	result.ComplianceScore = complianceScore(services)
	return result
}

// complianceScore grades the security posture of the selection from a
// 0.5 baseline up to 1.0.
func complianceScore(services []catalog.Service) float64 {
	score := 0.5

	hasKeyVault := false
	hasMonitor := false
	hasFirewall := false
	hasDefender := false
	for _, svc := range services {
		switch svc.Name {
		case "Azure Key Vault":
			hasKeyVault = true
		case "Azure Monitor":
			hasMonitor = true
		}
		if strings.Contains(svc.Name, "Firewall") {
			hasFirewall = true
		}
		if strings.Contains(svc.Name, "Defender") {
			hasDefender = true
		}
	}

	if hasKeyVault {
		score += 0.15
	}
	if hasMonitor {
		score += 0.15
	}
	if hasFirewall {
		score += 0.1
	}
	if hasDefender {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
