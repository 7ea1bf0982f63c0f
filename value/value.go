// Package value defines Orin's runtime value universe: Nil, Number,
// Boolean, String, Struct, and the Callable procedures (see package
// procedure), plus the truthiness, equality, and stringification rules
// the evaluator relies on.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Value is any runtime value. Callable values are *procedure.Native and
// *procedure.User (package procedure), which implement this interface
// directly rather than through a wrapper type.
type Value interface {
	Type() string
	String() string
}

// Nil is the single absence-of-value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Number is a 64-bit float.
type Number struct {
	F float64
}

func (Number) Type() string { return "number" }
func (n Number) String() string {
	return strconv.FormatFloat(n.F, 'g', -1, 64)
}

// Boolean is true or false.
type Boolean struct {
	B bool
}

func (Boolean) Type() string { return "boolean" }
func (b Boolean) String() string {
	if b.B {
		return "true"
	}
	return "false"
}

// String is a sequence of bytes taken verbatim from a string literal.
type String struct {
	S string
}

func (String) Type() string     { return "string" }
func (s String) String() string { return s.S }

// Struct is a mutable mapping from field name to Value, preserving
// first-insertion order for deterministic stringification.
type Struct struct {
	fields map[string]Value
	order  []string
}

// NewStruct builds an empty Struct.
func NewStruct() *Struct {
	return &Struct{fields: make(map[string]Value)}
}

// Get returns the named field, or (nil, false) if absent.
func (s *Struct) Get(name string) (Value, bool) {
	v, ok := s.fields[name]
	return v, ok
}

// Set installs name=val, appending name to the insertion order the first
// time it is written.
func (s *Struct) Set(name string, val Value) {
	if _, exists := s.fields[name]; !exists {
		s.order = append(s.order, name)
	}
	s.fields[name] = val
}

func (*Struct) Type() string { return "struct" }

func (s *Struct) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range s.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(Stringify(s.fields[name]))
	}
	b.WriteByte('}')
	return b.String()
}

// Truthy implements the language's truthiness predicate: Nil and
// Boolean(false) are falsy; everything else (including 0 and the empty
// string) is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Boolean:
		return v.B
	default:
		return true
	}
}

// Equal implements the language's equality rules: Nil equals only Nil,
// Numbers compare by bit-identity (NaN == NaN, +0 != -0, preserved
// deliberately per the language's design notes), Strings and Booleans
// compare by content, and values of different kinds are never equal.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Number:
		bn, ok := b.(Number)
		if !ok {
			return false
		}
		return math.Float64bits(a.F) == math.Float64bits(bn.F)
	case String:
		bs, ok := b.(String)
		if !ok {
			return false
		}
		return a.S == bs.S
	case Boolean:
		bb, ok := b.(Boolean)
		if !ok {
			return false
		}
		return a.B == bb.B
	default:
		return false
	}
}

// Stringify renders v using the language's exact print format. Callable
// values (*procedure.Native / *procedure.User) implement String()
// themselves in the <fn NAME> / <native fn NAME> formats and are routed
// straight through here.
func Stringify(v Value) string {
	return v.String()
}
