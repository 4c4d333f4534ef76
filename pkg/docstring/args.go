package docstring

import (
	"fmt"
	"strings"
)

// parseArgs parses the dedented body of an Args/Parameters section into
// ordered parameter records. Lines that do not scan as a new entry are
// continuations of the previous entry's description, joined with
// newlines so hard breaks survive. Duplicate names are preserved; the
// checker decides whether they matter. Findings cover entry lines whose
// type parenthesis or bracket never closes.
func parseArgs(body string) ([]Param, []Finding) {
	var (
		params   []Param
		findings []Finding
		current  *Param
		desc     []string
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.TrimSpace(strings.Join(desc, "\n"))
		params = append(params, *current)
		current = nil
		desc = nil
	}

	for _, line := range strings.Split(body, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		indented := line[0] == ' ' || line[0] == '\t'
		if !indented {
			if name, typ, rest, ok := scanParamLine(line); ok {
				flush()
				current = &Param{Name: name, Type: typ}
				if rest != "" {
					desc = append(desc, rest)
				}
				continue
			}
			if name, ok := unclosedTypeName(line); ok {
				findings = append(findings, Finding{
					Kind:     MalformedDescription,
					Location: "Args." + name,
					Message:  fmt.Sprintf("unclosed bracket in parameter type: %q", stripped),
				})
			}
		}
		if current != nil {
			desc = append(desc, stripped)
		}
	}
	flush()

	return params, findings
}

// scanParamLine scans an entry line of the form "name (type): rest" or
// "name: rest". The type substring runs from the first opening
// parenthesis after the name to its matching close, counting both
// parentheses and square brackets so generics like dict[str, Any] are
// kept whole.
func scanParamLine(line string) (name, typ, rest string, ok bool) {
	i := 0
	name, ok = scanIdent(line, &i)
	if !ok {
		return "", "", "", false
	}
	for i < len(line) && line[i] == ' ' {
		i++
	}
	if i < len(line) && line[i] == '(' {
		typ, ok = scanBracketed(line, &i)
		if !ok {
			return "", "", "", false
		}
		for i < len(line) && line[i] == ' ' {
			i++
		}
	}
	if i >= len(line) || line[i] != ':' {
		return "", "", "", false
	}
	return name, typ, strings.TrimSpace(line[i+1:]), true
}

// scanIdent scans an identifier token: a letter or underscore followed
// by letters, digits, or underscores.
func scanIdent(s string, i *int) (string, bool) {
	start := *i
	if *i >= len(s) {
		return "", false
	}
	c := s[*i]
	if !isLetter(c) && c != '_' {
		return "", false
	}
	for *i < len(s) {
		c := s[*i]
		if isLetter(c) || isDigit(c) || c == '_' {
			*i++
			continue
		}
		break
	}
	return s[start:*i], true
}

// scanBracketed consumes a parenthesized type from s starting at the
// opening '(' and returns the trimmed inner text. Nested parentheses
// and square brackets increase depth; the scan fails when the input
// ends before depth returns to zero.
func scanBracketed(s string, i *int) (string, bool) {
	start := *i + 1
	depth := 0
	for *i < len(s) {
		switch s[*i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth == 0 {
				inner := strings.TrimSpace(s[start:*i])
				*i++
				return inner, true
			}
		}
		*i++
	}
	return "", false
}

// unclosedTypeName reports whether line looks like a parameter entry
// whose type bracket never closes, returning the parameter name.
func unclosedTypeName(line string) (string, bool) {
	i := 0
	name, ok := scanIdent(line, &i)
	if !ok {
		return "", false
	}
	for i < len(line) && line[i] == ' ' {
		i++
	}
	if i >= len(line) || line[i] != '(' {
		return "", false
	}
	if _, closed := scanBracketed(line, &i); closed {
		return "", false
	}
	return name, true
}
