package docstring

import "strings"

// parseReturn parses a Returns or Yields body into a single record. The
// text before the first colon of the first line is taken as the type
// only when it scans as a type annotation (identifier, optionally
// dotted or with balanced brackets); otherwise the whole body is the
// description.
func parseReturn(body string) *Return {
	if body == "" {
		return nil
	}
	first, tail, _ := strings.Cut(body, "\n")

	r := &Return{}
	if head, rest, found := strings.Cut(first, ":"); found && isTypeLike(strings.TrimSpace(head)) {
		r.Type = strings.TrimSpace(head)
		first = strings.TrimSpace(rest)
	}
	r.Description = strings.TrimSpace(first)
	if tail != "" {
		r.Description = strings.TrimSpace(r.Description + "\n" + tail)
	}
	return r
}

// parseRaises parses a Raises body into exception records. Entries
// start at the base indentation with "ExceptionName: description";
// indented lines continue the previous entry's description.
func parseRaises(body string) []Raise {
	var (
		raises  []Raise
		current *Raise
		desc    []string
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.TrimSpace(strings.Join(desc, "\n"))
		raises = append(raises, *current)
		current = nil
		desc = nil
	}

	for _, line := range strings.Split(body, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			if name, rest, ok := scanRaiseLine(line); ok {
				flush()
				current = &Raise{Exception: name}
				if rest != "" {
					desc = append(desc, rest)
				}
				continue
			}
		}
		if current != nil {
			desc = append(desc, stripped)
		}
	}
	flush()

	return raises
}

// scanRaiseLine scans "ExceptionName: description". Exception names may
// be dotted (errors.InvalidType).
func scanRaiseLine(line string) (name, rest string, ok bool) {
	i := 0
	name, ok = scanIdent(line, &i)
	if !ok {
		return "", "", false
	}
	for i < len(line) && line[i] == '.' {
		i++
		part, ok := scanIdent(line, &i)
		if !ok {
			return "", "", false
		}
		name += "." + part
	}
	if i >= len(line) || line[i] != ':' {
		return "", "", false
	}
	return name, strings.TrimSpace(line[i+1:]), true
}

// isTypeLike reports whether s could be a type annotation: it starts
// with a letter or underscore and contains only identifier characters,
// dots, and balanced brackets. Free text with spaces outside brackets
// is not type-like.
func isTypeLike(s string) bool {
	if s == "" {
		return false
	}
	if !isLetter(s[0]) && s[0] != '_' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth < 0 {
				return false
			}
		case depth > 0:
			// Anything goes inside brackets: dict[str, Any].
		case isLetter(c) || isDigit(c) || c == '_' || c == '.':
		default:
			return false
		}
	}
	return depth == 0
}
