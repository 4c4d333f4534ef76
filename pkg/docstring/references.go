package docstring

import (
	"fmt"
	"strings"
)

// parseReferences parses a References/Reference body. Two surface forms
// are accepted: a single entry written as "description: source" with no
// dash, or two-plus entries each written as "- description: source".
// Mixing the forms is a format error, reported as a finding while the
// entries are still extracted best-effort. The separator between
// description and source is the first colon not immediately followed by
// a slash, so colons inside URL schemes (https://...) never split an
// entry. Indented lines continue the previous entry, joined with a
// single space: a wrapped citation is one logical source string.
func parseReferences(section, body string) ([]Reference, []Finding) {
	entries := splitReferenceEntries(body)
	if len(entries) == 0 {
		return nil, nil
	}

	var findings []Finding
	if len(entries) == 1 {
		if entries[0].dashed {
			findings = append(findings, Finding{
				Kind:     MalformedReference,
				Location: section + "[0]",
				Message:  "single reference must not start with a dash",
			})
		}
	} else {
		for i, e := range entries {
			if !e.dashed {
				findings = append(findings, Finding{
					Kind:     MalformedReference,
					Location: fmt.Sprintf("%s[%d]", section, i),
					Message:  "reference in a multi-entry list must start with \"- \"",
				})
			}
		}
	}

	refs := make([]Reference, 0, len(entries))
	for i, e := range entries {
		idx := separatorColon(e.text)
		if idx < 0 {
			findings = append(findings, Finding{
				Kind:     MalformedReference,
				Location: fmt.Sprintf("%s[%d]", section, i),
				Message:  fmt.Sprintf("missing separator colon between description and source: %q", e.text),
			})
			refs = append(refs, Reference{Source: e.text})
			continue
		}
		refs = append(refs, Reference{
			Description: strings.TrimSpace(e.text[:idx]),
			Source:      strings.TrimSpace(e.text[idx+1:]),
		})
	}

	return refs, findings
}

// refEntry is one logical reference before colon splitting.
type refEntry struct {
	text   string
	dashed bool
}

// splitReferenceEntries groups body lines into logical entries. A new
// entry starts at a base-indentation line; deeper lines continue the
// previous entry.
func splitReferenceEntries(body string) []refEntry {
	var entries []refEntry
	for _, line := range strings.Split(body, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		indented := line[0] == ' ' || line[0] == '\t'
		if indented && len(entries) > 0 {
			entries[len(entries)-1].text += " " + stripped
			continue
		}
		e := refEntry{text: stripped}
		if rest, ok := strings.CutPrefix(stripped, "- "); ok {
			e.dashed = true
			e.text = strings.TrimSpace(rest)
		}
		entries = append(entries, e)
	}
	return entries
}

// separatorColon returns the index of the first colon in s that is not
// immediately followed by a slash, or -1. The scan is an explicit pass
// over byte positions so the skip rule stays auditable: "paper:
// https://x" splits after "paper", never inside "https://".
func separatorColon(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '/' {
			continue
		}
		return i
	}
	return -1
}
