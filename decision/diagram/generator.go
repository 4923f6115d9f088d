// Package diagram renders Mermaid architecture diagrams for a selected
// service set. Well-known architecture shapes get curated reference
// templates; everything else gets a category flow diagram assembled
// from the selection.
package diagram

import (
	"fmt"
	"strings"

	"azure-architect/catalog"
)

// ArchType classifies the overall architecture shape.
type ArchType string

const (
	ArchMicroservices ArchType = "microservices"
	ArchDataPlatform  ArchType = "data_platform"
	ArchAISolution    ArchType = "ai_solution"
	ArchHybrid        ArchType = "hybrid"
	ArchStandard      ArchType = "standard"
)

// Diagram is a rendered architecture diagram.
type Diagram struct {
	Type         ArchType `json:"type"`
	Mermaid      string   `json:"mermaid"`
	ServiceCount int      `json:"service_count"`
}

// Generator renders diagrams.
type Generator struct{}

// NewGenerator creates a diagram generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate classifies the architecture from the detected pattern names
// and renders the matching diagram.
func (g *Generator) Generate(services []catalog.Service, patternNames []string) Diagram {
	archType := Classify(patternNames)

	var mermaid string
	switch archType {
	case ArchMicroservices:
		mermaid = microservicesTemplate
	case ArchDataPlatform:
		mermaid = dataPlatformTemplate
	case ArchAISolution:
		mermaid = aiSolutionTemplate
	case ArchHybrid:
		mermaid = hybridTemplate
	default:
		mermaid = g.categoryDiagram(services)
	}

	return Diagram{
		Type:         archType,
		Mermaid:      mermaid,
		ServiceCount: len(services),
	}
}

// Classify picks the architecture shape from pattern name substrings.
// Earlier checks win, so a microservices pattern outranks a data one.
func Classify(patternNames []string) ArchType {
	lowered := make([]string, len(patternNames))
	for i, name := range patternNames {
		lowered[i] = strings.ToLower(name)
	}

	contains := func(sub string) bool {
		for _, name := range lowered {
			if strings.Contains(name, sub) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("microservice"):
		return ArchMicroservices
	case contains("data") || contains("analytics"):
		return ArchDataPlatform
	case contains("ai") || contains("machine learning"):
		return ArchAISolution
	case contains("hybrid"):
		return ArchHybrid
	default:
		return ArchStandard
	}
}

// flowRelationships drives the inter-category arrows in the category
// diagram. Only categories present in the selection are connected.
var flowRelationships = []struct {
	source  string
	targets []string
}{
	{"Integration & Messaging", []string{"Compute", "Analytics & BI", "AI & Machine Learning"}},
	{"IoT & Edge", []string{"Analytics & BI", "Storage", "AI & Machine Learning"}},
	{"Compute", []string{"Databases", "Storage", "AI & Machine Learning"}},
	{"Containers", []string{"Databases", "Storage", "Networking"}},
	{"Analytics & BI", []string{"Storage", "Databases"}},
	{"AI & Machine Learning", []string{"Storage", "Analytics & BI"}},
	{"DevOps & Developer Tools", []string{"Compute", "Containers"}},
	{"Networking", []string{"Security & Identity"}},
	{"Security & Identity", []string{"Monitoring & Management"}},
}

// categoryDiagram builds a flowchart of the selected services grouped
// by category, connected by the fixed category flow table.
func (g *Generator) categoryDiagram(services []catalog.Service) string {
	var categoryOrder []string
	grouped := make(map[string][]string)
	for _, svc := range services {
		if _, seen := grouped[svc.Category]; !seen {
			categoryOrder = append(categoryOrder, svc.Category)
		}
		grouped[svc.Category] = append(grouped[svc.Category], svc.Name)
	}

	lines := []string{"flowchart TB"}

	nodeCounter := 0
	firstNode := make(map[string]string)
	for _, category := range categoryOrder {
		safe := strings.ReplaceAll(category, " ", "_")
		safe = strings.ReplaceAll(safe, "&", "and")
		lines = append(lines, fmt.Sprintf("    subgraph %s [%q]", safe, category))

		for _, name := range grouped[category] {
			nodeID := fmt.Sprintf("node%d", nodeCounter)
			lines = append(lines, fmt.Sprintf("        %s[%q]", nodeID, displayName(name)))
			if _, ok := firstNode[category]; !ok {
				firstNode[category] = nodeID
			}
			nodeCounter++
		}
		lines = append(lines, "    end")
	}

	for _, rel := range flowRelationships {
		source, ok := firstNode[rel.source]
		if !ok {
			continue
		}
		for _, target := range rel.targets {
			if targetNode, ok := firstNode[target]; ok {
				lines = append(lines, fmt.Sprintf("    %s --> %s", source, targetNode))
			}
		}
	}

	lines = append(lines,
		"    classDef compute fill:#e1f5fe",
		"    classDef storage fill:#f3e5f5",
		"    classDef analytics fill:#e8f5e8",
		"    classDef security fill:#ffebee",
		"    classDef ai fill:#fff3e0",
	)

	return strings.Join(lines, "\n")
}

// displayName shortens service names so diagram nodes stay readable.
func displayName(name string) string {
	name = strings.ReplaceAll(name, "Azure ", "")
	name = strings.ReplaceAll(name, "Microsoft ", "")
	if len(name) > 25 {
		name = name[:22] + "..."
	}
	return name
}
