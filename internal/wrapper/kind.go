package wrapper

import "fmt"

// FieldKind is the structural kind of a field. Exactly one kind is derived per field.
type FieldKind interface {
	fmt.Stringer
	isFieldKind()
}

// ScalarClass distinguishes the value-typed scalar kinds.
type ScalarClass int

const (
	ScalarInt ScalarClass = iota
	ScalarFloat
	ScalarBool
)

// ScalarKind is an integer, floating point or boolean field stored by value.
type ScalarKind struct {
	Class  ScalarClass
	GoType string
}

// StringKind is a string field.
type StringKind struct{}

// BytesKind is a []byte field.
type BytesKind struct{}

// MessageKind is a nested message. Boxed messages are stored behind a pointer.
// Unresolved counts the "super." qualifiers left in front of Type by Resolve.
type MessageKind struct {
	Type       string
	Boxed      bool
	Unresolved int
}

// RepeatedKind is a list field. Elem is the Go element type, with the message
// reference already rewritten for package level use. Prefix is the namespace
// stack left after cancelling "super" markers and Unresolved counts the markers
// that had nothing left to cancel.
type RepeatedKind struct {
	Elem        string
	ElemMessage bool
	Prefix      []string
	Unresolved  int
}

// MapKind is a map field.
type MapKind struct {
	GoType string
}

// EnumerationKind is an enum stored as its int32 number.
type EnumerationKind struct {
	Enum string
}

// OneOfKind is a member of a oneof group. No accessors are synthesized for it.
type OneOfKind struct {
	Name string
}

// OptionalKind is a field with explicit presence, stored behind a pointer.
type OptionalKind struct {
	Inner FieldKind
}

func (ScalarKind) isFieldKind()      {}
func (StringKind) isFieldKind()      {}
func (BytesKind) isFieldKind()       {}
func (MessageKind) isFieldKind()     {}
func (RepeatedKind) isFieldKind()    {}
func (MapKind) isFieldKind()         {}
func (EnumerationKind) isFieldKind() {}
func (OneOfKind) isFieldKind()       {}
func (OptionalKind) isFieldKind()    {}

func (k ScalarKind) String() string {
	switch k.Class {
	case ScalarFloat:
		return "Float(" + k.GoType + ")"
	case ScalarBool:
		return "Bool"
	default:
		return "Int(" + k.GoType + ")"
	}
}

func (StringKind) String() string { return "String" }
func (BytesKind) String() string  { return "Bytes" }

func (k MessageKind) String() string {
	if k.Boxed {
		return "Message(*" + k.Type + ")"
	}
	return "Message(" + k.Type + ")"
}

func (k RepeatedKind) String() string {
	return "Repeated(" + k.Elem + ")"
}

func (k MapKind) String() string         { return "Map(" + k.GoType + ")" }
func (k EnumerationKind) String() string { return "Enumeration(" + k.Enum + ")" }
func (k OneOfKind) String() string       { return "OneOf(" + k.Name + ")" }
func (k OptionalKind) String() string    { return "Optional(" + k.Inner.String() + ")" }

func unwrapOptional(k FieldKind) FieldKind {
	if o, ok := k.(OptionalKind); ok {
		return o.Inner
	}
	return k
}
