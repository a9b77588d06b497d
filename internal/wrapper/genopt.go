package wrapper

import (
	"fmt"
	"strings"
)

// GenOpt selects which categories of code the wrapper emits.
type GenOpt uint16

const (
	// MessageAdapter emits the legacy message contract for every struct.
	MessageAdapter GenOpt = 1 << iota
	// Get emits Get* accessors.
	Get
	// Set emits Set* accessors.
	Set
	// New emits a New<Type> constructor.
	New
	// Clear emits Clear* accessors.
	Clear
	// Has emits Has* accessors for fields with explicit presence.
	Has
	// Mut emits Mut* accessors returning a pointer to the field storage.
	Mut
	// Take emits Take* accessors that move the value out.
	Take
)

const (
	All            = MessageAdapter | Get | Set | New | Clear | Has | Mut | Take
	NoMessage      = All &^ MessageAdapter
	NoMessageNoNew = NoMessage &^ New
)

var genOptNames = []struct {
	opt  GenOpt
	name string
}{
	{MessageAdapter, "message"},
	{Get, "get"},
	{Set, "set"},
	{New, "new"},
	{Clear, "clear"},
	{Has, "has"},
	{Mut, "mut"},
	{Take, "take"},
}

var genOptPresets = map[string]GenOpt{
	"all":               All,
	"no-message":        NoMessage,
	"no-message-no-new": NoMessageNoNew,
	"none":              0,
}

// Contains reports whether every flag of o is set in g.
func (g GenOpt) Contains(o GenOpt) bool {
	return g&o == o
}

// String renders g as a preset name or a "|" separated flag list.
func (g GenOpt) String() string {
	for _, name := range []string{"all", "no-message", "no-message-no-new", "none"} {
		if genOptPresets[name] == g {
			return name
		}
	}
	var parts []string
	for _, n := range genOptNames {
		if g.Contains(n.opt) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseGenOpt parses a preset name or a "|" separated list of flag names.
func ParseGenOpt(s string) (GenOpt, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if g, ok := genOptPresets[s]; ok {
		return g, nil
	}
	var g GenOpt
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		found := false
		for _, n := range genOptNames {
			if n.name == part {
				g |= n.opt
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown gen option %q", part)
		}
	}
	return g, nil
}

// Adapter selects which legacy message contract MessageAdapter implements.
type Adapter int

const (
	// AdapterLegacy implements legacy.Message.
	AdapterLegacy Adapter = iota
	// AdapterGogo implements legacy.Marshaler.
	AdapterGogo
)

func (a Adapter) String() string {
	switch a {
	case AdapterGogo:
		return "gogo"
	default:
		return "legacy"
	}
}

// ParseAdapter parses "legacy" or "gogo"; the empty string means legacy.
func ParseAdapter(s string) (Adapter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return AdapterLegacy, nil
	case "gogo":
		return AdapterGogo, nil
	default:
		return 0, fmt.Errorf("unknown adapter %q", s)
	}
}
