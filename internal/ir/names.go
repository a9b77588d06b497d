package ir

import (
	"strings"
	"unicode"
)

// GoName converts a proto field name into an exported Go identifier. A final
// "id" word becomes "ID".
func GoName(protoName string) string {
	parts := splitParts(protoName)
	if len(parts) == 0 {
		return ""
	}
	for i := range parts {
		if i == len(parts)-1 && parts[i] == "id" {
			parts[i] = "ID"
			continue
		}
		parts[i] = title(parts[i])
	}
	return camelID(strings.Join(parts, ""))
}

// camelID upper-cases a camelCase "Id" suffix: clientFlipId -> ClientFlipID.
func camelID(name string) string {
	base, ok := strings.CutSuffix(name, "Id")
	if !ok || base == "" {
		return name
	}
	if r := []rune(base); unicode.IsLower(r[len(r)-1]) || unicode.IsDigit(r[len(r)-1]) {
		return base + "ID"
	}
	return name
}

// TypeName flattens a nested declaration path into one exported identifier,
// keeping each segment and joining them with "_": Outer.Inner -> Outer_Inner.
func TypeName(path ...string) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		if p != "" {
			parts = append(parts, title(p))
		}
	}
	return strings.Join(parts, "_")
}

// SplitFullName splits a dotted proto name into its segments.
func SplitFullName(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, ".")
}

func splitParts(name string) []string {
	if name == "" {
		return nil
	}
	if strings.ContainsAny(name, "_-") {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '_' || r == '-'
		})
		for i := range parts {
			parts[i] = strings.ToLower(parts[i])
		}
		return parts
	}
	return []string{name}
}

func title(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
