package ir

type File struct {
	Path      string
	Package   string
	GoPackage string
	GoOut     string
	Enums     []Enum
	Messages  []Message
}

// Namespace is the dotted proto package split into segments.
func (f File) Namespace() []string {
	return SplitFullName(f.Package)
}

type Enum struct {
	Name     string
	FullName string
	Scope    []string
	Values   []EnumValue
}

type EnumValue struct {
	Name   string
	Number int32
}

type Message struct {
	Name     string
	FullName string
	// Scope holds the names of the enclosing messages, outermost first.
	Scope  []string
	Fields []Field
}

type Field struct {
	Name            string
	GoName          string
	Number          int
	Kind            Kind
	IsRepeated      bool
	IsOptional      bool
	IsPacked        bool
	IsMap           bool
	MapKeyKind      Kind
	MapValueKind    Kind
	MapValueMessage string
	MapValueEnum    string
	MessageFullName string
	EnumFullName    string
}

type Kind int

const (
	KindBool Kind = iota
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindMessage
	KindEnum
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindSint32:   "sint32",
	KindSint64:   "sint64",
	KindFixed32:  "fixed32",
	KindFixed64:  "fixed64",
	KindSfixed32: "sfixed32",
	KindSfixed64: "sfixed64",
	KindFloat:    "float",
	KindDouble:   "double",
	KindString:   "string",
	KindBytes:    "bytes",
	KindMessage:  "message",
	KindEnum:     "enum",
}

// String returns the proto keyword of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
