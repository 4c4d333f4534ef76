package docstring

import "strings"

// Render re-serializes the Description and Args sections back to
// Google-style text. The output re-parses to an equal Description and
// parameter list, which is the property the round-trip tests pin down.
// Other sections are not rendered; the parser is the system of record
// for those.
func (p *Parsed) Render() string {
	var b strings.Builder
	b.WriteString(p.Description)

	args := p.Args()
	if len(args) == 0 {
		return b.String()
	}

	if b.Len() > 0 {
		b.WriteString("\n\n")
	}
	b.WriteString("Args:\n")
	for _, a := range args {
		b.WriteString("    ")
		b.WriteString(a.Name)
		if a.Type != "" {
			b.WriteString(" (")
			b.WriteString(a.Type)
			b.WriteString(")")
		}
		b.WriteString(":")
		lines := strings.Split(a.Description, "\n")
		if lines[0] != "" {
			b.WriteString(" ")
			b.WriteString(lines[0])
		}
		b.WriteString("\n")
		for _, l := range lines[1:] {
			b.WriteString("        ")
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
