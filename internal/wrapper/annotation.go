package wrapper

import (
	"strconv"
	"strings"
)

// Token is one recognized annotation.
type Token int

const (
	TokRepeated Token = iota
	TokMap
	TokMessage
	TokInt
	TokFloat
	TokBool
	TokBytes
	TokString
	TokOneOf
	TokEnumeration
	TokOptional
)

// precedence is the fixed resolution order among co-occurring kind tokens.
var precedence = []Token{
	TokRepeated,
	TokMap,
	TokMessage,
	TokInt,
	TokFloat,
	TokBool,
	TokBytes,
	TokString,
	TokOneOf,
	TokEnumeration,
}

var bareTokens = map[string]Token{
	"repeated": TokRepeated,
	"map":      TokMap,
	"message":  TokMessage,
	"int32":    TokInt,
	"int64":    TokInt,
	"uint32":   TokInt,
	"uint64":   TokInt,
	"sint32":   TokInt,
	"sint64":   TokInt,
	"fixed32":  TokInt,
	"fixed64":  TokInt,
	"sfixed32": TokInt,
	"sfixed64": TokInt,
	"float":    TokFloat,
	"double":   TokFloat,
	"bool":     TokBool,
	"bytes":    TokBytes,
	"string":   TokString,
	"optional": TokOptional,
}

// Annotations is the structured form of a cleanproto struct tag.
type Annotations struct {
	Number      int
	Tokens      map[Token]bool
	Enumeration string
	OneOf       string
	Ref         string
	// Unknown holds parts that matched nothing. They are kept for error messages.
	Unknown []string
}

// ParseAnnotations parses a tag such as "3,repeated,message,ref=super.Item".
func ParseAnnotations(tag string) Annotations {
	a := Annotations{Tokens: make(map[Token]bool)}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if key, value, ok := strings.Cut(part, "="); ok {
			switch key {
			case "enumeration":
				a.Enumeration = value
				a.Tokens[TokEnumeration] = true
			case "oneof":
				a.OneOf = value
				a.Tokens[TokOneOf] = true
			case "ref":
				a.Ref = value
			default:
				a.Unknown = append(a.Unknown, part)
			}
			continue
		}
		if tok, ok := bareTokens[part]; ok {
			a.Tokens[tok] = true
			continue
		}
		if n, err := strconv.Atoi(part); err == nil && a.Number == 0 {
			a.Number = n
			continue
		}
		a.Unknown = append(a.Unknown, part)
	}
	return a
}

// Has reports whether tok was present.
func (a Annotations) Has(tok Token) bool {
	return a.Tokens[tok]
}

// Primary returns the highest-precedence kind token, ignoring optional.
func (a Annotations) Primary() (Token, bool) {
	for _, tok := range precedence {
		if a.Tokens[tok] {
			return tok, true
		}
	}
	return 0, false
}
