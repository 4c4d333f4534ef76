package docstring

import "strings"

// Parse converts a dedented Google-style docstring into its structured
// form. Parsing is best-effort and never fails: malformed constructs
// degrade to partial structure plus entries in Parsed.Findings. An
// empty input yields an empty Description and no sections.
//
// A repeated recognized header merges into the earlier section in
// appearance order: entry lists are appended, free text is joined with
// a blank line.
func Parse(text string) *Parsed {
	p := &Parsed{}
	text = strings.TrimSpace(text)
	if text == "" {
		return p
	}

	for _, c := range splitSections(text) {
		if c.header == "" {
			p.Description = c.body
			continue
		}
		p.addSection(buildSection(c, &p.Findings))
	}
	return p
}

func buildSection(c chunk, findings *[]Finding) Section {
	kind, recognized := sectionKinds[c.header]
	if !recognized {
		return Section{Kind: KindOther, Name: c.header, Text: c.body}
	}

	s := Section{Kind: kind, Name: c.header}
	switch kind {
	case KindArgs:
		args, fs := parseArgs(c.body)
		s.Args = args
		*findings = append(*findings, fs...)
	case KindReturns, KindYields:
		s.Returns = parseReturn(c.body)
	case KindRaises:
		s.Raises = parseRaises(c.body)
	case KindReferences:
		refs, fs := parseReferences(c.header, c.body)
		s.References = refs
		*findings = append(*findings, fs...)
	}
	return s
}

// addSection appends sec, merging it into an existing section of the
// same kind (or, for KindOther, the same name) when the header repeats.
func (p *Parsed) addSection(sec Section) {
	var existing *Section
	if sec.Kind == KindOther {
		existing = p.Section(sec.Name)
	} else {
		existing = p.sectionByKind(sec.Kind)
	}
	if existing == nil {
		p.Sections = append(p.Sections, sec)
		return
	}

	switch sec.Kind {
	case KindArgs:
		existing.Args = append(existing.Args, sec.Args...)
	case KindRaises:
		existing.Raises = append(existing.Raises, sec.Raises...)
	case KindReferences:
		existing.References = append(existing.References, sec.References...)
	case KindReturns, KindYields:
		if existing.Returns == nil {
			existing.Returns = sec.Returns
		}
	default:
		if existing.Text == "" {
			existing.Text = sec.Text
		} else if sec.Text != "" {
			existing.Text += "\n\n" + sec.Text
		}
	}
}
