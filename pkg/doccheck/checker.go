// Package doccheck cross-validates parsed docstrings against code
// signatures and checks their structural health. All checks are purely
// textual: the package never resolves, imports, or executes the checked
// code.
package doccheck

import (
	"fmt"
	"strings"

	"github.com/gork-labs/doccheck/pkg/docstring"
)

// SigParam is one declared parameter of the checked signature, supplied
// by whatever introspection mechanism the caller uses.
type SigParam struct {
	Name string
	Type string // canonical declared type, empty when unannotated
}

// Signature is the externally supplied parameter list of the function
// or method being checked.
type Signature struct {
	Name   string
	Params []SigParam
}

// Config controls optional checks.
type Config struct {
	// RequireParamTypes reports parameters documented without a type and
	// type annotations that are structurally invalid.
	RequireParamTypes bool
	// CheckReferences enables the References structural checks. On by
	// default via DefaultConfig.
	CheckReferences bool
	// IgnoreParams lists documented names never reported as
	// undocumented, e.g. variadic markers. Names starting with '*' are
	// always ignored.
	IgnoreParams []string
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{CheckReferences: true}
}

// Checker validates parsed docstrings. The zero value is not useful;
// construct with New.
type Checker struct {
	cfg Config
}

// New returns a Checker with the given configuration.
func New(cfg Config) *Checker {
	return &Checker{cfg: cfg}
}

// Check runs every applicable check and returns the accumulated
// findings in a stable order: parse-stage findings first, then
// structural checks, then signature comparison. It never mutates its
// inputs and never stops at the first finding. sig may be nil, in which
// case only structural checks run.
func (c *Checker) Check(doc *docstring.Parsed, sig *Signature) []docstring.Finding {
	var findings []docstring.Finding

	for _, f := range doc.Findings {
		if f.Kind == docstring.MalformedReference && !c.cfg.CheckReferences {
			continue
		}
		findings = append(findings, f)
	}

	findings = append(findings, c.checkStructure(doc)...)
	if sig != nil {
		findings = append(findings, c.checkSignature(doc, sig)...)
	}
	return findings
}

// checkStructure validates sections that need no signature: reference
// field completeness, misspelled Returns headers, duplicate parameters,
// and (when required) parameter types.
func (c *Checker) checkStructure(doc *docstring.Parsed) []docstring.Finding {
	var findings []docstring.Finding

	if c.cfg.CheckReferences {
		findings = append(findings, checkReferenceFields(doc)...)
	}
	findings = append(findings, checkSectionNames(doc)...)
	findings = append(findings, checkDuplicateParams(doc)...)
	if c.cfg.RequireParamTypes {
		findings = append(findings, checkParamTypes(doc)...)
	}
	return findings
}

func checkReferenceFields(doc *docstring.Parsed) []docstring.Finding {
	var section *docstring.Section
	for i := range doc.Sections {
		if doc.Sections[i].Kind == docstring.KindReferences {
			section = &doc.Sections[i]
			break
		}
	}
	if section == nil {
		return nil
	}

	var findings []docstring.Finding
	for i, ref := range section.References {
		if ref.Description == "" {
			findings = append(findings, docstring.Finding{
				Kind:     docstring.MalformedReference,
				Location: fmt.Sprintf("%s[%d]", section.Name, i),
				Message:  "reference has an empty description",
			})
		}
		if ref.Source == "" {
			findings = append(findings, docstring.Finding{
				Kind:     docstring.MalformedReference,
				Location: fmt.Sprintf("%s[%d]", section.Name, i),
				Message:  "reference has an empty source",
			})
		}
	}
	return findings
}

// misspelledSections maps section headers that parse as unrecognized
// free text to the header their author almost certainly meant.
var misspelledSections = map[string]string{
	"Return":  "Returns",
	"return":  "Returns",
	"returns": "Returns",
	"Yield":   "Yields",
	"args":    "Args",
	"Arg":     "Args",
}

func checkSectionNames(doc *docstring.Parsed) []docstring.Finding {
	var findings []docstring.Finding
	for _, s := range doc.Sections {
		if s.Kind != docstring.KindOther {
			continue
		}
		if want, ok := misspelledSections[s.Name]; ok {
			findings = append(findings, docstring.Finding{
				Kind:     docstring.MalformedDescription,
				Location: s.Name,
				Message:  fmt.Sprintf("section %q should be spelled %q", s.Name, want),
			})
		}
	}
	return findings
}

func checkDuplicateParams(doc *docstring.Parsed) []docstring.Finding {
	var findings []docstring.Finding
	seen := map[string]bool{}
	for _, p := range doc.Args() {
		if seen[p.Name] {
			findings = append(findings, docstring.Finding{
				Kind:     docstring.MalformedDescription,
				Location: "Args." + p.Name,
				Message:  fmt.Sprintf("parameter %q is documented more than once", p.Name),
			})
		}
		seen[p.Name] = true
	}
	return findings
}

func checkParamTypes(doc *docstring.Parsed) []docstring.Finding {
	var findings []docstring.Finding
	for _, p := range doc.Args() {
		if p.Type == "" {
			findings = append(findings, docstring.Finding{
				Kind:     docstring.MalformedDescription,
				Location: "Args." + p.Name,
				Message:  fmt.Sprintf("parameter %q is missing a type", p.Name),
			})
			continue
		}
		if err := ValidateTypeAnnotation(p.Type); err != nil {
			findings = append(findings, docstring.Finding{
				Kind:     docstring.MalformedDescription,
				Location: "Args." + p.Name,
				Message:  fmt.Sprintf("parameter %q has an invalid type: %v", p.Name, err),
			})
		}
	}
	return findings
}

// checkSignature compares documented parameters against declared ones.
// Declared order drives MissingParam findings; documentation order
// drives UndocumentedParam and TypeMismatch findings.
func (c *Checker) checkSignature(doc *docstring.Parsed, sig *Signature) []docstring.Finding {
	var findings []docstring.Finding

	documented := map[string]docstring.Param{}
	for _, p := range doc.Args() {
		if _, ok := documented[p.Name]; !ok {
			documented[p.Name] = p
		}
	}
	declared := map[string]SigParam{}
	for _, p := range sig.Params {
		declared[p.Name] = p
	}

	for _, p := range sig.Params {
		if _, ok := documented[p.Name]; !ok {
			findings = append(findings, docstring.Finding{
				Kind:     docstring.MissingParam,
				Location: "Args." + p.Name,
				Message:  fmt.Sprintf("parameter %q is not documented", p.Name),
			})
		}
	}

	for _, p := range doc.Args() {
		if c.ignored(p.Name) {
			continue
		}
		decl, ok := declared[p.Name]
		if !ok {
			findings = append(findings, docstring.Finding{
				Kind:     docstring.UndocumentedParam,
				Location: "Args." + p.Name,
				Message:  fmt.Sprintf("documented parameter %q is not part of the signature", p.Name),
			})
			continue
		}
		if p.Type != "" && decl.Type != "" && !TypesEquivalent(p.Type, decl.Type) {
			findings = append(findings, docstring.Finding{
				Kind:     docstring.TypeMismatch,
				Location: "Args." + p.Name,
				Message:  fmt.Sprintf("documented type %q does not match declared type %q", p.Type, decl.Type),
			})
		}
	}

	return findings
}

func (c *Checker) ignored(name string) bool {
	if strings.HasPrefix(name, "*") {
		return true
	}
	for _, ig := range c.cfg.IgnoreParams {
		if name == ig {
			return true
		}
	}
	return false
}
