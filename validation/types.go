// Package validation provides structural consistency checking for
// Petri nets. Checks are read-only and never stop at the first defect:
// the full list of findings is collected in discovery order.
package validation

import (
	"github.com/pflow-xyz/go-pnml/petri"
)

// Severity levels for issues.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue represents a single validation finding.
type Issue struct {
	Severity string   `json:"severity"` // "error" or "warning"
	Category string   `json:"category"` // "structure", "arc", "connectivity"
	Message  string   `json:"message"`
	Location []string `json:"location,omitempty"` // affected element ids
}

// Summary provides an overview of the validated net.
type Summary struct {
	Places      int `json:"places"`
	Transitions int `json:"transitions"`
	Arcs        int `json:"arcs"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
}

// Result contains the outcome of validation. Valid is true when no
// error-severity issues were found; warnings never fail a net.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
	Summary  Summary `json:"summary"`
}

// Defects returns the error messages in discovery order: global checks
// first, then arc checks in arc-list order.
func (r *Result) Defects() []string {
	msgs := make([]string, len(r.Errors))
	for i, issue := range r.Errors {
		msgs[i] = issue.Message
	}
	return msgs
}

// Validator performs consistency checks on a net.
type Validator struct {
	net    *petri.Net
	result *Result
}

// NewValidator creates a validator for a net.
func NewValidator(net *petri.Net) *Validator {
	return &Validator{
		net: net,
		result: &Result{
			Valid: true,
			Summary: Summary{
				Places:      len(net.Places),
				Transitions: len(net.Transitions),
				Arcs:        len(net.Arcs),
			},
		},
	}
}

// Validate runs all checks and returns the collected result.
// The net itself is never modified.
func (v *Validator) Validate() *Result {
	v.checkStructure()
	v.checkArcs()
	v.checkConnectivity()

	v.result.Valid = len(v.result.Errors) == 0
	v.result.Summary.Errors = len(v.result.Errors)
	v.result.Summary.Warnings = len(v.result.Warnings)

	return v.result
}

// AddError records an error-severity issue.
func (v *Validator) AddError(category, message string, location []string) {
	v.result.Errors = append(v.result.Errors, Issue{
		Severity: SeverityError,
		Category: category,
		Message:  message,
		Location: location,
	})
}

// AddWarning records a warning-severity issue.
func (v *Validator) AddWarning(category, message string, location []string) {
	v.result.Warnings = append(v.result.Warnings, Issue{
		Severity: SeverityWarning,
		Category: category,
		Message:  message,
		Location: location,
	})
}
