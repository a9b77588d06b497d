package wrapper

import (
	"slices"
	"strings"
)

// upMarker is the leading ref segment meaning "one scope outward".
const upMarker = "super"

// Resolved is a type reference rewritten for use at package level.
type Resolved struct {
	// Name is the flattened Go type name. Markers that could not be cancelled
	// remain in front of it verbatim as "super.".
	Name string
	// Prefix is the scope left after cancellation.
	Prefix []string
	// Unresolved counts the markers that found no scope segment to cancel.
	Unresolved int
}

// Resolve rewrites ref, written relative to scope, into the flat type name
// used by generated code. Every leading "super" segment cancels the innermost
// remaining scope segment. The rest of the path is appended to what is left of
// the scope and joined with "_".
func Resolve(scope []string, ref string) Resolved {
	segs := SplitNamespace(ref)
	stack := slices.Clone(scope)
	i := 0
	for i < len(segs)-1 && segs[i] == upMarker && len(stack) > 0 {
		stack = stack[:len(stack)-1]
		i++
	}
	unresolved := 0
	for i < len(segs)-1 && segs[i] == upMarker {
		unresolved++
		i++
	}
	name := strings.Join(append(slices.Clone(stack), segs[i:]...), "_")
	if unresolved > 0 {
		name = strings.Repeat(upMarker+".", unresolved) + name
	}
	return Resolved{Name: name, Prefix: stack, Unresolved: unresolved}
}
