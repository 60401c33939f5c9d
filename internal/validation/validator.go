// =============================================================================
// XML to BOM Generator - Validation Engine
// =============================================================================
//
// This module checks that every component carries manufacturer
// identification before grouping starts.
//
// VALIDATION STRATEGY:
//   For each component the identification is resolved from its fields.
//   - Resolved:                  the component passes silently.
//   - Missing, generic-eligible: an informational diagnostic is emitted and
//                                the component passes as a generic part.
//   - Missing, not eligible:     a warning diagnostic is emitted and the
//                                overall check fails.
//
// ERROR HANDLING:
//   - Diagnostics are collected, not thrown immediately
//   - Every component is checked even after the first failure
//   - Result.Err() turns a failed check into a *ValidationFailure
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/xml-to-bom/internal/config"
	"github.com/ginjaninja78/xml-to-bom/internal/identify"
	"github.com/ginjaninja78/xml-to-bom/internal/logging"
	"github.com/ginjaninja78/xml-to-bom/internal/types"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// Severity classifies a diagnostic.
type Severity string

const (
	// SeverityInfo marks a component accepted as a generic part.
	SeverityInfo Severity = "info"

	// SeverityError marks a component that fails the check.
	SeverityError Severity = "error"
)

// Diagnostic describes one component that lacks identification.
type Diagnostic struct {
	Severity Severity

	// Ref is the reference designator of the component.
	Ref string

	// Reason is why the identification could not be resolved.
	Reason types.MissingReason

	// Message is the human-readable line printed for this diagnostic.
	Message string
}

// ValidationFailure lists the components that failed the check.
type ValidationFailure struct {
	Designators []string
}

// Error implements the error interface.
func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("BOM check failed: %d component(s) missing manufacturer identification: %s",
		len(e.Designators), strings.Join(e.Designators, ", "))
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// Result contains the outcome of a check.
type Result struct {
	// OK is true if no component failed outright.
	OK bool

	// Diagnostics holds one entry per component lacking identification,
	// in input order.
	Diagnostics []Diagnostic

	// Failed lists the designators that failed, in input order.
	Failed []string

	// Generic lists the designators accepted as generic parts, in input order.
	Generic []string

	// ComponentsChecked is the number of records inspected.
	ComponentsChecked int
}

// Err returns a *ValidationFailure when the check failed, nil otherwise.
func (r *Result) Err() error {
	if r.OK {
		return nil
	}
	return &ValidationFailure{Designators: append([]string(nil), r.Failed...)}
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks component identification.
type Validator struct {
	resolver identify.Resolver
	policy   identify.GenericPolicy
	logger   logging.Logger
}

// NewValidator creates a Validator from the configuration.
func NewValidator(cfg *config.Config, logger logging.Logger) *Validator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Validator{
		resolver: identify.NewResolver(cfg.Fields),
		policy:   identify.ValidatorPolicy(cfg.Generic),
		logger:   logger,
	}
}

// Check inspects every record and reports whether all of them either carry
// identification or are generic-eligible. Each diagnostic is also logged.
func (v *Validator) Check(records []types.ComponentRecord) *Result {
	result := &Result{
		OK:                true,
		ComponentsChecked: len(records),
	}

	for _, rec := range records {
		_, reason := v.resolver.Resolve(rec)
		if reason == types.ReasonNone {
			continue
		}

		d := Diagnostic{Ref: rec.Ref, Reason: reason}

		if v.policy.Allows(rec.Ref) {
			d.Severity = SeverityInfo
			d.Message = fmt.Sprintf("Component '%s' is missing '%s' and/or '%s' entry.  Treating as generic %s component..",
				rec.Ref, v.resolver.ManufacturerField, v.resolver.PartNumberField, firstChar(rec.Ref))
			result.Generic = append(result.Generic, rec.Ref)
			v.logger.Info("%s", d.Message)
		} else {
			d.Severity = SeverityError
			d.Message = fmt.Sprintf("Component '%s' is missing '%s' and/or '%s' (%s)",
				rec.Ref, v.resolver.ManufacturerField, v.resolver.PartNumberField, reason)
			result.Failed = append(result.Failed, rec.Ref)
			result.OK = false
			v.logger.Warn("%s", d.Message)
		}

		result.Diagnostics = append(result.Diagnostics, d)
	}

	return result
}

// firstChar returns the first character of s, or "" for an empty string.
func firstChar(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
