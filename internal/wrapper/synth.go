package wrapper

import (
	"fmt"
	"strconv"
	"strings"
)

// Method is one synthesized accessor. Signature excludes the receiver and Body
// holds the statements, one per line, without the enclosing braces.
type Method struct {
	Category  GenOpt
	Name      string
	Signature string
	Body      []string
}

// MethodSet is the accessors of one field in emission order.
type MethodSet struct {
	Field   FieldDecl
	Methods []Method
}

// methodOrder is the fixed order of categories within a field.
var methodOrder = []GenOpt{Has, Clear, Set, Get, Mut, Take}

var categoryPrefix = map[GenOpt]string{
	Has:   "Has",
	Clear: "Clear",
	Set:   "Set",
	Get:   "Get",
	Mut:   "Mut",
	Take:  "Take",
}

// Applicable returns the accessor categories kind defines, independent of any
// enabled flags.
func Applicable(kind FieldKind) GenOpt {
	switch k := kind.(type) {
	case ScalarKind, EnumerationKind:
		return Get | Set | Clear
	case StringKind, BytesKind:
		return Get | Set | Clear | Mut | Take
	case MessageKind:
		return Get | Set | Mut | Take
	case RepeatedKind, MapKind:
		return Get | Clear | Mut | Take
	case OptionalKind:
		if _, ok := k.Inner.(OneOfKind); ok {
			return 0
		}
		return Get | Set | Clear | Has | Applicable(k.Inner)&(Mut|Take)
	default:
		return 0
	}
}

// Synthesize decides the accessors of field. A category is emitted when kind
// defines it and opt enables it.
func Synthesize(field FieldDecl, kind FieldKind, opt GenOpt) MethodSet {
	set := MethodSet{Field: field}
	enabled := Applicable(kind) & opt
	if enabled == 0 {
		return set
	}
	b := bodies(field.Name, kind)
	for _, cat := range methodOrder {
		if !enabled.Contains(cat) {
			continue
		}
		m := b[cat]
		m.Category = cat
		m.Name = categoryPrefix[cat] + field.Display
		m.Signature = m.Name + m.Signature
		set.Methods = append(set.Methods, m)
	}
	return set
}

// bodies returns every applicable accessor of a field stored in m.<name>,
// with Signature holding only the parameter and result part.
func bodies(name string, kind FieldKind) map[GenOpt]Method {
	f := "m." + name
	switch k := kind.(type) {
	case ScalarKind:
		zero := "0"
		if k.Class == ScalarBool {
			zero = "false"
		}
		return valueBodies(f, k.GoType, zero)
	case StringKind:
		return valueBodies(f, "string", `""`)
	case BytesKind:
		return valueBodies(f, "[]byte", "nil")
	case MessageKind:
		return messageBodies(f, k)
	case RepeatedKind:
		return containerBodies(f, "[]"+k.Elem)
	case MapKind:
		return containerBodies(f, k.GoType)
	case EnumerationKind:
		return map[GenOpt]Method{
			Get: {Signature: "() " + k.Enum, Body: append(
				[]string{"if m == nil {", "return " + k.Enum + "(0)", "}"},
				enumDecode(k.Enum, f)...)},
			Set:   {Signature: "(v " + k.Enum + ")", Body: []string{f + " = int32(v)"}},
			Clear: {Signature: "()", Body: []string{f + " = 0"}},
		}
	case OptionalKind:
		return optionalBodies(f, k.Inner)
	}
	return nil
}

func valueBodies(f, typ, zero string) map[GenOpt]Method {
	return map[GenOpt]Method{
		Get:   {Signature: "() " + typ, Body: []string{"if m == nil {", "return " + zero, "}", "return " + f}},
		Set:   {Signature: "(v " + typ + ")", Body: []string{f + " = v"}},
		Clear: {Signature: "()", Body: []string{f + " = " + zero}},
		Mut:   {Signature: "() *" + typ, Body: []string{"return &" + f}},
		Take:  {Signature: "() " + typ, Body: []string{"v := " + f, f + " = " + zero, "return v"}},
	}
}

func messageBodies(f string, k MessageKind) map[GenOpt]Method {
	if !k.Boxed {
		return map[GenOpt]Method{
			Get:  {Signature: "() " + k.Type, Body: []string{"if m == nil {", "return *" + defaultCall(k.Type), "}", "return " + f}},
			Set:  {Signature: "(v " + k.Type + ")", Body: []string{f + " = v"}},
			Mut:  {Signature: "() *" + k.Type, Body: []string{"return &" + f}},
			Take: {Signature: "() " + k.Type, Body: []string{"v := " + f, f + " = " + k.Type + "{}", "return v"}},
		}
	}
	ptr := "*" + k.Type
	return map[GenOpt]Method{
		Get: {Signature: "() " + ptr, Body: []string{
			"if m == nil || " + f + " == nil {", "return " + defaultCall(k.Type), "}", "return " + f}},
		Set: {Signature: "(v " + ptr + ")", Body: []string{f + " = v"}},
		Mut: {Signature: "() " + ptr, Body: []string{
			"if " + f + " == nil {", f + " = new(" + k.Type + ")", "}", "return " + f}},
		Take: {Signature: "() " + ptr, Body: []string{
			"v := " + f, f + " = new(" + k.Type + ")", "if v == nil {", "v = new(" + k.Type + ")", "}", "return v"}},
	}
}

func containerBodies(f, typ string) map[GenOpt]Method {
	return map[GenOpt]Method{
		Get:   {Signature: "() " + typ, Body: []string{"if m == nil {", "return nil", "}", "return " + f}},
		Clear: {Signature: "()", Body: []string{f + " = nil"}},
		Mut:   {Signature: "() *" + typ, Body: []string{"return &" + f}},
		Take:  {Signature: "() " + typ, Body: []string{"v := " + f, f + " = nil", "return v"}},
	}
}

// optionalBodies covers fields stored as *inner with nil meaning absent.
func optionalBodies(f string, inner FieldKind) map[GenOpt]Method {
	absent := "if m == nil || " + f + " == nil {"
	out := map[GenOpt]Method{
		Has:   {Signature: "() bool", Body: []string{"return m != nil && " + f + " != nil"}},
		Clear: {Signature: "()", Body: []string{f + " = nil"}},
	}
	switch k := inner.(type) {
	case MessageKind:
		ptr := "*" + k.Type
		out[Get] = Method{Signature: "() " + ptr, Body: []string{absent, "return " + defaultCall(k.Type), "}", "return " + f}}
		out[Set] = Method{Signature: "(v " + ptr + ")", Body: []string{f + " = v"}}
		out[Mut] = Method{Signature: "() " + ptr, Body: []string{
			"if " + f + " == nil {", f + " = new(" + k.Type + ")", "}", "return " + f}}
		out[Take] = Method{Signature: "() " + ptr, Body: []string{
			"v := " + f, f + " = nil", "if v == nil {", "v = new(" + k.Type + ")", "}", "return v"}}
	case EnumerationKind:
		out[Get] = Method{Signature: "() " + k.Enum, Body: append(
			[]string{absent, "return " + k.Enum + "(0)", "}"},
			enumDecode(k.Enum, "*"+f)...)}
		out[Set] = Method{Signature: "(v " + k.Enum + ")", Body: []string{"n := int32(v)", f + " = &n"}}
	default:
		typ, zero := storage(inner)
		out[Get] = Method{Signature: "() " + typ, Body: []string{absent, "return " + zero, "}", "return *" + f}}
		out[Set] = Method{Signature: "(v " + typ + ")", Body: []string{f + " = &v"}}
		out[Mut] = Method{Signature: "() *" + typ, Body: []string{
			"if " + f + " == nil {", f + " = new(" + typ + ")", "}", "return " + f}}
		out[Take] = Method{Signature: "() " + typ, Body: []string{
			"if " + f + " == nil {", "return " + zero, "}", "v := *" + f, f + " = nil", "return v"}}
	}
	return out
}

// storage returns the Go type and zero literal of a value-stored kind.
func storage(kind FieldKind) (string, string) {
	switch k := kind.(type) {
	case ScalarKind:
		if k.Class == ScalarBool {
			return k.GoType, "false"
		}
		return k.GoType, "0"
	case StringKind:
		return "string", `""`
	case BytesKind:
		return "[]byte", "nil"
	case RepeatedKind:
		return "[]" + k.Elem, "nil"
	case MapKind:
		return k.GoType, "nil"
	}
	panic(fmt.Sprintf("wrapper: no storage type for %s", kind))
}

func enumDecode(enum, value string) []string {
	return []string{
		"v, ok := " + enum + "FromInt32(" + value + ")",
		"if !ok {",
		"panic(legacy.UnknownEnumValue(" + strconv.Quote(enum) + ", " + value + "))",
		"}",
		"return v",
	}
}

// defaultCall calls the default accessor of typ. A qualifier left by an
// unresolved reference stays in front of the function name.
func defaultCall(typ string) string {
	i := strings.LastIndex(typ, ".")
	return typ[:i+1] + "Default" + typ[i+1:] + "()"
}
