package docstring

import "strings"

// chunk is one header-delimited region of raw text. A chunk with an
// empty header is the leading description.
type chunk struct {
	header string
	body   string
}

// sectionKinds is the closed header vocabulary. Headers outside this map
// (and recognized free-text ones like Example or Note) land in KindOther
// with their body stored verbatim.
var sectionKinds = map[string]Kind{
	"Args":       KindArgs,
	"Parameters": KindArgs,
	"Returns":    KindReturns,
	"Yields":     KindYields,
	"Raises":     KindRaises,
	"Reference":  KindReferences,
	"References": KindReferences,
}

// splitSections segments raw docstring text into ordered chunks. A
// header is a zero-indent line of the form "Name:" where Name starts
// with a letter and continues with letters, digits, or spaces. Body
// lines are dedented by the indent of the first content line; blank
// lines inside a body are preserved as paragraph breaks.
func splitSections(text string) []chunk {
	var chunks []chunk
	header := ""
	var content []string
	indent := -1

	flush := func() {
		if len(content) > 0 || header != "" {
			chunks = append(chunks, chunk{header: header, body: strings.TrimSpace(strings.Join(content, "\n"))})
		}
		content = nil
		indent = -1
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		// Skip blank lines before a chunk has any content.
		if stripped == "" && len(content) == 0 {
			continue
		}

		if name, ok := headerName(line); ok {
			flush()
			header = name
			continue
		}

		// The first content line after a header fixes the dedent level.
		// Tabs count as one indent character each, so gofmt-style
		// tab-indented doc comments dedent the same way space-indented
		// docstrings do.
		if indent < 0 && stripped != "" {
			indent = leadingIndent(line)
		}
		if stripped == "" {
			content = append(content, "")
			continue
		}
		if n := leadingIndent(line); indent > 0 && n >= indent {
			line = line[indent:]
		}
		content = append(content, line)
	}
	flush()

	return chunks
}

// headerName reports whether line is a section header and returns the
// header text without the trailing colon. Headers sit at zero
// indentation; indented lines ending in a colon belong to some section's
// body.
func headerName(line string) (string, bool) {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return "", false
	}
	if !strings.HasSuffix(line, ":") {
		return "", false
	}
	name := line[:len(line)-1]
	if len(name) < 2 || !isLetter(name[0]) {
		return "", false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !isLetter(c) && !isDigit(c) && c != ' ' {
			return "", false
		}
	}
	return name, true
}

// leadingIndent counts leading space and tab characters.
func leadingIndent(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
