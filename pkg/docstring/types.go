// Package docstring parses Google-style docstrings into structured,
// ordered sections.
package docstring

// Kind identifies the structural type of a section.
type Kind int

const (
	// KindArgs is a parameter list section (Args or Parameters header).
	KindArgs Kind = iota
	// KindReturns is a Returns section with a single typed record.
	KindReturns
	// KindYields is a Yields section, structured like Returns.
	KindYields
	// KindRaises is a Raises section with zero or more exception records.
	KindRaises
	// KindReferences is a References or Reference section.
	KindReferences
	// KindOther is any free-text section, recognized (Example, Note,
	// Attributes) or not (arbitrary headers like "Image types").
	KindOther
)

// Param is one documented parameter in an Args section.
type Param struct {
	Name        string
	Type        string // empty when the docstring gives no type
	Description string // multi-line descriptions keep their line breaks
}

// Return describes a Returns or Yields section entry.
type Return struct {
	Type        string // empty when the docstring gives no type
	Description string
}

// Raise describes one entry of a Raises section.
type Raise struct {
	Exception   string
	Description string
}

// Reference is one entry of a References section: a human-readable
// description and a source (citation or URL).
type Reference struct {
	Description string
	Source      string
}

// Section is one header-delimited region of a docstring. Exactly one of
// the payload fields is populated, according to Kind.
type Section struct {
	Kind Kind
	Name string // header as written, e.g. "Args", "Note", "Image types"

	Args       []Param
	Returns    *Return
	Raises     []Raise
	References []Reference
	Text       string
}

// Parsed is the structured form of a docstring. Sections preserves the
// order in which headers appear in the source text. Findings collects
// non-fatal format problems discovered during parsing.
type Parsed struct {
	Description string
	Sections    []Section
	Findings    []Finding
}

// Section returns the first section with the given header name, or nil.
func (p *Parsed) Section(name string) *Section {
	for i := range p.Sections {
		if p.Sections[i].Name == name {
			return &p.Sections[i]
		}
	}
	return nil
}

// Args returns the parameters of the Args (or Parameters) section, or
// nil when the docstring has none.
func (p *Parsed) Args() []Param {
	if s := p.sectionByKind(KindArgs); s != nil {
		return s.Args
	}
	return nil
}

// Returns returns the Returns section record, or nil.
func (p *Parsed) Returns() *Return {
	if s := p.sectionByKind(KindReturns); s != nil {
		return s.Returns
	}
	return nil
}

// Yields returns the Yields section record, or nil.
func (p *Parsed) Yields() *Return {
	if s := p.sectionByKind(KindYields); s != nil {
		return s.Returns
	}
	return nil
}

// Raises returns the entries of the Raises section, or nil.
func (p *Parsed) Raises() []Raise {
	if s := p.sectionByKind(KindRaises); s != nil {
		return s.Raises
	}
	return nil
}

// References returns the entries of the References section, or nil.
func (p *Parsed) References() []Reference {
	if s := p.sectionByKind(KindReferences); s != nil {
		return s.References
	}
	return nil
}

func (p *Parsed) sectionByKind(k Kind) *Section {
	for i := range p.Sections {
		if p.Sections[i].Kind == k {
			return &p.Sections[i]
		}
	}
	return nil
}
