// Package export renders recommendation reports into shareable
// formats: a JSON bundle, an ARM deployment template skeleton, and a
// Terraform starting point.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"azure-architect/decision/recommend"
)

// Tool identity stamped into export metadata.
const (
	ToolName    = "Azure Architecture Advisor"
	ToolVersion = "1.0"
)

// Metadata identifies one export.
type Metadata struct {
	ReportID    string `json:"report_id"`
	GeneratedAt string `json:"generated_at"`
	Tool        string `json:"tool"`
	Version     string `json:"version"`
}

// ServiceSummary is the condensed per-service line in the bundle.
type ServiceSummary struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Score      int    `json:"score"`
	Importance string `json:"importance"`
}

// CostSummary condenses the cost analysis for the bundle.
type CostSummary struct {
	TotalMonthly string `json:"total_monthly"`
	TotalAnnual  string `json:"total_annual"`
}

// Bundle is the full JSON export payload.
type Bundle struct {
	Metadata     Metadata         `json:"metadata"`
	Requirements interface{}      `json:"requirements"`
	Services     []ServiceSummary `json:"services"`
	Patterns     interface{}      `json:"patterns"`
	CostAnalysis CostSummary      `json:"cost_analysis"`
	Diagram      string           `json:"diagram"`
	ARMTemplate  string           `json:"arm_template"`
	Terraform    string           `json:"terraform"`
}

// Manager builds export artifacts from reports.
type Manager struct{}

// NewManager creates an export manager.
func NewManager() *Manager {
	return &Manager{}
}

// Prepare assembles the export bundle for a report.
func (m *Manager) Prepare(report *recommend.Report) (*Bundle, error) {
	if report == nil {
		return nil, fmt.Errorf("report is nil")
	}

	services := make([]ServiceSummary, len(report.Services))
	for i, s := range report.Services {
		services[i] = ServiceSummary{
			Name:       s.Service.Name,
			Category:   s.Service.Category,
			Score:      s.Score,
			Importance: string(s.Service.Importance),
		}
	}

	arm, err := armTemplate()
	if err != nil {
		return nil, fmt.Errorf("generate ARM template: %w", err)
	}

	return &Bundle{
		Metadata: Metadata{
			ReportID:    report.ID.String(),
			GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
			Tool:        ToolName,
			Version:     ToolVersion,
		},
		Requirements: report.Requirements,
		Services:     services,
		Patterns:     report.Patterns,
		CostAnalysis: CostSummary{
			TotalMonthly: report.Cost.TotalMonthly.StringFixed(2),
			TotalAnnual:  report.Cost.TotalAnnual.StringFixed(2),
		},
		Diagram:     report.Diagram.Mermaid,
		ARMTemplate: arm,
		Terraform:   terraformStub,
	}, nil
}

// JSON renders the bundle as indented JSON.
func (m *Manager) JSON(report *recommend.Report) ([]byte, error) {
	bundle, err := m.Prepare(report)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(bundle, "", "  ")
}

// armTemplate emits an empty deployment template the user fills in.
// Resource generation from the selection is out of scope for exports.
func armTemplate() (string, error) {
	template := map[string]interface{}{
		"$schema":        "https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#",
		"contentVersion": "1.0.0.0",
		"parameters":     map[string]interface{}{},
		"variables":      map[string]interface{}{},
		"resources":      []interface{}{},
		"outputs":        map[string]interface{}{},
	}
	data, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

const terraformStub = `terraform {
  required_providers {
    azurerm = {
      source  = "hashicorp/azurerm"
      version = "~>3.0"
    }
  }
}

provider "azurerm" {
  features {}
}

resource "azurerm_resource_group" "main" {
  name     = "rg-architecture"
  location = "East US"
}
`
