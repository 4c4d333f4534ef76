package docstring

import "fmt"

// FindingKind classifies a detected docstring problem.
type FindingKind string

const (
	// MissingParam marks a declared parameter absent from the Args section.
	MissingParam FindingKind = "missing-param"
	// UndocumentedParam marks a documented parameter absent from the signature.
	UndocumentedParam FindingKind = "undocumented-param"
	// TypeMismatch marks a documented type that disagrees with the declared one.
	TypeMismatch FindingKind = "type-mismatch"
	// MalformedReference marks a References entry violating the dash or
	// colon rules, or missing a description or source.
	MalformedReference FindingKind = "malformed-reference"
	// MalformedDescription marks structural problems outside References:
	// unclosed type brackets, duplicate parameters, misspelled section
	// headers, missing or invalid parameter types.
	MalformedDescription FindingKind = "malformed-description"
)

// Finding is a non-fatal, structured report of a docstring problem.
// Findings accumulate; neither the parser nor the checker ever aborts on
// one.
type Finding struct {
	Kind     FindingKind
	Location string // e.g. "Args.alpha", "References[2]"
	Message  string
}

func (f Finding) String() string {
	if f.Location == "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Message)
	}
	return fmt.Sprintf("%s: %s: %s", f.Kind, f.Location, f.Message)
}
