package export

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azure-architect/catalog"
	"azure-architect/decision/recommend"
	"azure-architect/pkg/workload"
)

func testReport(t *testing.T) *recommend.Report {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	engine := recommend.NewEngine(cat, nil)
	report, err := engine.Recommend(context.Background(), workload.Requirements{
		UseCase:  "modern data platform with analytics",
		Industry: "financial",
	})
	require.NoError(t, err)
	return report
}

func TestPrepareNilReport(t *testing.T) {
	manager := NewManager()

	_, err := manager.Prepare(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report is nil")
}

func TestPrepareBundle(t *testing.T) {
	manager := NewManager()
	report := testReport(t)

	bundle, err := manager.Prepare(report)
	require.NoError(t, err)

	assert.Equal(t, report.ID.String(), bundle.Metadata.ReportID)
	assert.Equal(t, ToolName, bundle.Metadata.Tool)
	assert.Equal(t, ToolVersion, bundle.Metadata.Version)
	assert.NotEmpty(t, bundle.Metadata.GeneratedAt)

	require.Len(t, bundle.Services, len(report.Services))
	assert.Equal(t, report.Services[0].Service.Name, bundle.Services[0].Name)
	assert.Equal(t, report.Services[0].Score, bundle.Services[0].Score)

	assert.Equal(t, report.Cost.TotalMonthly.StringFixed(2), bundle.CostAnalysis.TotalMonthly)
	assert.Equal(t, report.Cost.TotalAnnual.StringFixed(2), bundle.CostAnalysis.TotalAnnual)
	assert.Equal(t, report.Diagram.Mermaid, bundle.Diagram)
}

func TestPrepareARMTemplate(t *testing.T) {
	manager := NewManager()
	report := testReport(t)

	bundle, err := manager.Prepare(report)
	require.NoError(t, err)

	var arm map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(bundle.ARMTemplate), &arm))
	assert.Equal(t,
		"https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#",
		arm["$schema"])
	assert.Equal(t, "1.0.0.0", arm["contentVersion"])
	assert.Empty(t, arm["resources"])
}

func TestPrepareTerraformStub(t *testing.T) {
	manager := NewManager()
	report := testReport(t)

	bundle, err := manager.Prepare(report)
	require.NoError(t, err)

	assert.Contains(t, bundle.Terraform, `source  = "hashicorp/azurerm"`)
	assert.Contains(t, bundle.Terraform, `version = "~>3.0"`)
	assert.Contains(t, bundle.Terraform, `"rg-architecture"`)
}

func TestJSONRoundTrip(t *testing.T) {
	manager := NewManager()
	report := testReport(t)

	data, err := manager.JSON(report)
	require.NoError(t, err)

	var decoded Bundle
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.ID.String(), decoded.Metadata.ReportID)
	assert.Len(t, decoded.Services, len(report.Services))
}
