// Package catalog provides the embedded Azure service catalog, the
// reference architecture patterns, and the per-industry compliance
// profiles used by the decision engines.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/services.yaml
var servicesYAML []byte

//go:embed data/patterns.yaml
var patternsYAML []byte

//go:embed data/industries.yaml
var industriesYAML []byte

// CostTier classifies the relative monthly cost of a service.
type CostTier string

const (
	CostTierFree     CostTier = "free"
	CostTierLow      CostTier = "low"
	CostTierMedium   CostTier = "medium"
	CostTierHigh     CostTier = "high"
	CostTierVariable CostTier = "variable"
)

// Importance classifies how central a service is to an architecture.
type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
	ImportanceLow      Importance = "low"
)

// Service describes one Azure service in the catalog.
type Service struct {
	Name           string     `yaml:"name" json:"name"`
	Category       string     `yaml:"category" json:"category"`
	Subcategory    string     `yaml:"subcategory" json:"subcategory"`
	CostTier       CostTier   `yaml:"cost_tier" json:"cost_tier"`
	UseCases       []string   `yaml:"use_cases" json:"use_cases"`
	IntegratesWith []string   `yaml:"integrates_with" json:"integrates_with"`
	Compliance     []string   `yaml:"compliance" json:"compliance"`
	Description    string     `yaml:"description" json:"description"`
	DataRole       string     `yaml:"data_role" json:"data_role"`
	Importance     Importance `yaml:"architectural_importance" json:"architectural_importance"`
	PricingModel   string     `yaml:"pricing_model" json:"pricing_model"`
	DocsURL        string     `yaml:"docs" json:"docs_url"`
	PricingURL     string     `yaml:"pricing" json:"pricing_url"`
}

// Pattern is a reference architecture matched against selected services.
type Pattern struct {
	Key                 string   `yaml:"key" json:"key"`
	Name                string   `yaml:"name" json:"name"`
	Description         string   `yaml:"description" json:"description"`
	RequiredServices    []string `yaml:"required_services" json:"required_services"`
	RecommendedServices []string `yaml:"recommended_services" json:"recommended_services"`
	OptionalServices    []string `yaml:"optional_services" json:"optional_services"`
	UseCases            []string `yaml:"use_cases" json:"use_cases"`
	Industries          []string `yaml:"industries" json:"industries"`
	Complexity          string   `yaml:"complexity" json:"complexity"`
	EstimatedTimeline   string   `yaml:"estimated_timeline" json:"estimated_timeline"`
}

// IndustryProfile captures the compliance posture of one industry.
type IndustryProfile struct {
	Key                   string         `yaml:"-" json:"key"`
	Name                  string         `yaml:"name" json:"name"`
	ComplianceFrameworks  []string       `yaml:"compliance_frameworks" json:"compliance_frameworks"`
	RequiredServices      []string       `yaml:"required_services" json:"required_services"`
	DataResidency         string         `yaml:"data_residency" json:"data_residency"`
	Encryption            string         `yaml:"encryption" json:"encryption"`
	AuditLogging          string         `yaml:"audit_logging" json:"audit_logging"`
	SpecialConsiderations []string       `yaml:"special_considerations" json:"special_considerations"`
	CategoryPriorities    map[string]int `yaml:"category_priorities" json:"category_priorities"`
}

// Catalog is the immutable in-memory catalog. Build it once with Load
// and share it; all methods are read-only.
type Catalog struct {
	services   []Service
	byName     map[string]int
	patterns   []Pattern
	industries map[string]IndustryProfile
}

// Load parses the embedded data files. Missing cost tiers and
// importance levels default to medium.
func Load() (*Catalog, error) {
	var svcDoc struct {
		Services []Service `yaml:"services"`
	}
	if err := yaml.Unmarshal(servicesYAML, &svcDoc); err != nil {
		return nil, fmt.Errorf("parse service catalog: %w", err)
	}

	var patDoc struct {
		Patterns []Pattern `yaml:"patterns"`
	}
	if err := yaml.Unmarshal(patternsYAML, &patDoc); err != nil {
		return nil, fmt.Errorf("parse patterns: %w", err)
	}

	var indDoc struct {
		Industries map[string]IndustryProfile `yaml:"industries"`
	}
	if err := yaml.Unmarshal(industriesYAML, &indDoc); err != nil {
		return nil, fmt.Errorf("parse industry profiles: %w", err)
	}

	c := &Catalog{
		services:   svcDoc.Services,
		byName:     make(map[string]int, len(svcDoc.Services)),
		patterns:   patDoc.Patterns,
		industries: make(map[string]IndustryProfile, len(indDoc.Industries)),
	}

	for i := range c.services {
		svc := &c.services[i]
		if svc.Name == "" {
			return nil, fmt.Errorf("service at index %d has no name", i)
		}
		if svc.CostTier == "" {
			svc.CostTier = CostTierMedium
		}
		if svc.Importance == "" {
			svc.Importance = ImportanceMedium
		}
		if _, dup := c.byName[svc.Name]; dup {
			return nil, fmt.Errorf("duplicate service %q", svc.Name)
		}
		c.byName[svc.Name] = i
	}

	for key, profile := range indDoc.Industries {
		profile.Key = key
		c.industries[key] = profile
	}

	return c, nil
}

// MustLoad is Load for program initialization paths where the embedded
// data being unparseable is unrecoverable.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Services returns all services in catalog order.
func (c *Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// ByName looks up a service by exact name.
func (c *Catalog) ByName(name string) (Service, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

// ByCategory returns the services in a category, in catalog order.
func (c *Catalog) ByCategory(category string) []Service {
	var out []Service
	for _, svc := range c.services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out
}

// Categories returns the distinct category names, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, svc := range c.services {
		if !seen[svc.Category] {
			seen[svc.Category] = true
			out = append(out, svc.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Patterns returns all reference patterns in definition order.
func (c *Catalog) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}

// Industry looks up an industry compliance profile by key.
func (c *Catalog) Industry(key string) (IndustryProfile, bool) {
	p, ok := c.industries[key]
	return p, ok
}

// IndustryKeys returns the known industry identifiers, sorted.
func (c *Catalog) IndustryKeys() []string {
	out := make([]string, 0, len(c.industries))
	for key := range c.industries {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of services in the catalog.
func (c *Catalog) Len() int {
	return len(c.services)
}
