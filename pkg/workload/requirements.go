// Package workload defines the shared request contracts describing the
// workload an architecture is being recommended for.
package workload

import (
	"github.com/go-playground/validator/v10"
)

// Requirements captures everything the decision engines need to know
// about the target workload. UseCase is free text; Capabilities maps
// capability names to whether the user selected them.
type Requirements struct {
	UseCase           string          `json:"use_case" validate:"required"`
	Industry          string          `json:"industry,omitempty" validate:"omitempty,oneof=healthcare financial government retail manufacturing technology startup"`
	Capabilities      map[string]bool `json:"capabilities,omitempty"`
	TeamSize          int             `json:"team_size,omitempty" validate:"omitempty,min=1,max=10000"`
	ExpectedUsers     int             `json:"expected_users,omitempty" validate:"omitempty,min=1"`
	DataVolumeGB      int             `json:"data_volume_gb,omitempty" validate:"omitempty,min=0"`
	BudgetSensitivity string          `json:"budget_sensitivity,omitempty" validate:"omitempty,oneof=low medium high"`
}

// SelectedCapabilities returns the capability names the user enabled,
// in map iteration order. Callers that need determinism sort the result.
func (r Requirements) SelectedCapabilities() []string {
	out := make([]string, 0, len(r.Capabilities))
	for name, selected := range r.Capabilities {
		if selected {
			out = append(out, name)
		}
	}
	return out
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the requirements against the struct constraints.
func (r Requirements) Validate() error {
	return validate.Struct(r)
}

// ApplyDefaults fills sizing fields that were omitted. Zero values are
// treated as "not provided" since the JSON contract omits empty fields.
func (r *Requirements) ApplyDefaults() {
	if r.TeamSize == 0 {
		r.TeamSize = 5
	}
	if r.ExpectedUsers == 0 {
		r.ExpectedUsers = 1000
	}
	if r.DataVolumeGB == 0 {
		r.DataVolumeGB = 100
	}
	if r.BudgetSensitivity == "" {
		r.BudgetSensitivity = "medium"
	}
}
