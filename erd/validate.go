package erd

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the document is structurally unsound.
	Error Severity = iota
	// Warning means the document is usable but likely incomplete.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "fk_has_target")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Entity   string   // related entity name (optional)
	Fix      string   // suggested fix (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Entity != "" {
		fmt.Fprintf(&b, " (entity: %s)", d.Entity)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(doc *Document) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity
// diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against the document.
// Returns all diagnostics regardless of severity.
func Validate(doc *Document, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(doc)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(doc *Document, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(doc, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errors}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		uniqueEntityNamesRule{},
		fkHasTargetRule{},
		weakIdentifiedRule{},
		sideEntityExistsRule{},
		fkTargetExistsRule{},
	}
}

// unique_entity_names: entity names are identifiers and must be unique.
type uniqueEntityNamesRule struct{}

func (uniqueEntityNamesRule) Name() string { return "unique_entity_names" }

func (uniqueEntityNamesRule) Apply(doc *Document) []Diagnostic {
	seen := make(map[string]bool, len(doc.Entities))
	var diags []Diagnostic
	for _, e := range doc.Entities {
		if seen[e.Name] {
			diags = append(diags, Diagnostic{
				Rule:     "unique_entity_names",
				Severity: Error,
				Message:  fmt.Sprintf("entity %q is declared more than once", e.Name),
				Entity:   e.Name,
				Fix:      "rename or merge the duplicate declarations",
			})
		}
		seen[e.Name] = true
	}
	return diags
}

// fk_has_target: every foreign-key attribute should name its target.
type fkHasTargetRule struct{}

func (fkHasTargetRule) Name() string { return "fk_has_target" }

func (fkHasTargetRule) Apply(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for _, e := range doc.Entities {
		for _, a := range e.Attributes {
			if a.Key == KeyForeign && a.Ref == nil {
				diags = append(diags, Diagnostic{
					Rule:     "fk_has_target",
					Severity: Error,
					Message:  fmt.Sprintf("foreign key %q has no target", a.Name),
					Entity:   e.Name,
					Fix:      fmt.Sprintf("add '-> Entity.attribute' after %q", a.Name),
				})
			}
		}
	}
	return diags
}

// weak_identified: a weak entity without an Identified By clause parses, but
// has nothing supplying its identity.
type weakIdentifiedRule struct{}

func (weakIdentifiedRule) Name() string { return "weak_identified" }

func (weakIdentifiedRule) Apply(doc *Document) []Diagnostic {
	var diags []Diagnostic
	for _, e := range doc.Entities {
		if e.Kind == EntityWeak && len(e.IdentifiedBy) == 0 {
			diags = append(diags, Diagnostic{
				Rule:     "weak_identified",
				Severity: Warning,
				Message:  fmt.Sprintf("weak entity %q has no Identified By clause", e.Name),
				Entity:   e.Name,
				Fix:      "add 'Identified By Owner.key' naming the identifying attributes",
			})
		}
	}
	return diags
}

// side_entity_exists: relationship sides should reference declared entities.
type sideEntityExistsRule struct{}

func (sideEntityExistsRule) Name() string { return "side_entity_exists" }

func (sideEntityExistsRule) Apply(doc *Document) []Diagnostic {
	declared := make(map[string]bool, len(doc.Entities))
	for _, e := range doc.Entities {
		declared[e.Name] = true
	}

	var diags []Diagnostic
	for _, r := range doc.Relationships {
		for _, side := range r.Sides {
			if side.Entity != "" && !declared[side.Entity] {
				diags = append(diags, Diagnostic{
					Rule:     "side_entity_exists",
					Severity: Warning,
					Message:  fmt.Sprintf("relationship %q references undeclared entity %q", r.Name, side.Entity),
					Entity:   side.Entity,
					Fix:      fmt.Sprintf("declare entity %q or fix the relationship side", side.Entity),
				})
			}
		}
	}
	return diags
}

// fk_target_exists: foreign-key targets and Identified By references should
// resolve to a declared entity and one of its attributes.
type fkTargetExistsRule struct{}

func (fkTargetExistsRule) Name() string { return "fk_target_exists" }

func (fkTargetExistsRule) Apply(doc *Document) []Diagnostic {
	var diags []Diagnostic

	check := func(owner string, ref ForeignKeyRef) {
		target := doc.EntityByName(ref.Entity)
		if target == nil {
			diags = append(diags, Diagnostic{
				Rule:     "fk_target_exists",
				Severity: Warning,
				Message:  fmt.Sprintf("reference %s.%s names undeclared entity %q", ref.Entity, ref.Attribute, ref.Entity),
				Entity:   owner,
				Fix:      fmt.Sprintf("declare entity %q or fix the reference", ref.Entity),
			})
			return
		}
		for _, a := range target.Attributes {
			if a.Name == ref.Attribute {
				return
			}
		}
		diags = append(diags, Diagnostic{
			Rule:     "fk_target_exists",
			Severity: Warning,
			Message:  fmt.Sprintf("reference %s.%s names an attribute %q does not declare", ref.Entity, ref.Attribute, ref.Entity),
			Entity:   owner,
			Fix:      fmt.Sprintf("add attribute %q to entity %q or fix the reference", ref.Attribute, ref.Entity),
		})
	}

	for _, e := range doc.Entities {
		for _, a := range e.Attributes {
			if a.Ref != nil {
				check(e.Name, *a.Ref)
			}
		}
		for _, ref := range e.IdentifiedBy {
			check(e.Name, ref)
		}
	}
	return diags
}
