package doccheck

import (
	"fmt"
	"strings"
)

// collectionsRequiringArgs lists generic collection names that are
// invalid without element types, in both their typing-module and
// builtin spellings.
var collectionsRequiringArgs = map[string]struct{}{
	"Dict":      {},
	"FrozenSet": {},
	"Generator": {},
	"Iterable":  {},
	"Iterator":  {},
	"List":      {},
	"Sequence":  {},
	"Set":       {},
	"Tuple":     {},
	"dict":      {},
	"frozenset": {},
	"list":      {},
	"set":       {},
	"tuple":     {},
}

// IsBareCollection reports whether name is a generic collection written
// without element types.
func IsBareCollection(name string) bool {
	_, ok := collectionsRequiringArgs[name]
	return ok
}

// ValidateTypeAnnotation checks that a docstring type annotation is
// well-formed: bare collections must carry element types, recursively
// inside generics, so Dict[str, List] is as invalid as a plain List.
// Callable argument lists are not descended into. An empty annotation
// is valid.
func ValidateTypeAnnotation(typ string) error {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return nil
	}
	if IsBareCollection(typ) {
		return fmt.Errorf("collection type %q must include element types (e.g. %s[str])", typ, typ)
	}

	outer, inner, ok := splitGeneric(typ)
	if !ok || inner == "" {
		return nil
	}
	if outer == "Callable" && strings.HasPrefix(inner, "[") {
		return nil
	}
	for _, arg := range splitTypeArgs(inner) {
		if err := ValidateTypeAnnotation(arg); err != nil {
			return err
		}
	}
	return nil
}

// splitGeneric splits "Outer[inner]" into its parts. It returns ok
// false when typ carries no bracketed argument list.
func splitGeneric(typ string) (outer, inner string, ok bool) {
	open := strings.IndexByte(typ, '[')
	if open < 0 || !strings.HasSuffix(typ, "]") {
		return "", "", false
	}
	return typ[:open], typ[open+1 : len(typ)-1], true
}

// splitTypeArgs splits comma-separated type arguments, honoring nested
// brackets so "str, dict[str, int]" yields two arguments.
func splitTypeArgs(inner string) []string {
	var (
		args    []string
		depth   int
		current strings.Builder
	)
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch c {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
		}
		current.WriteByte(c)
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		args = append(args, s)
	}
	return args
}

// normalizeType produces the comparison form of a type string: spaces
// removed, typing-module prefixes stripped, case folded. List[int] and
// list[int] normalize identically.
func normalizeType(typ string) string {
	typ = strings.ReplaceAll(typ, " ", "")
	typ = strings.ReplaceAll(typ, "typing.", "")
	return strings.ToLower(typ)
}

// TypesEquivalent reports whether two type strings denote the same type
// after textual normalization. The comparison is purely textual; it
// never resolves names.
func TypesEquivalent(a, b string) bool {
	return normalizeType(a) == normalizeType(b)
}
