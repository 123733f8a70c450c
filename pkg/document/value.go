package document

import (
	"encoding/hex"
	"fmt"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindDocument
	KindArray
	// KindGeneratedID is a database-assigned identifier (a MongoDB ObjectID)
	KindGeneratedID
)

var kindNames = map[Kind]string{
	KindNull:        "null",
	KindBool:        "bool",
	KindInt:         "int",
	KindFloat:       "float",
	KindString:      "string",
	KindDocument:    "document",
	KindArray:       "array",
	KindGeneratedID: "generated-id",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a dynamically typed document value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	doc  Document
	arr  []Value
	id   [12]byte
}

func Null() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Int(i int64) Value { return Value{kind: KindInt, i: i} }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func String(s string) Value { return Value{kind: KindString, s: s} }

// Doc wraps a nested document. A nil document is stored as an empty one.
func Doc(d Document) Value {
	if d == nil {
		d = Document{}
	}
	return Value{kind: KindDocument, doc: d}
}

// Array wraps a list of values. No arguments yields an empty, non-nil array.
func Array(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindArray, arr: vs}
}

func GeneratedID(id [12]byte) Value { return Value{kind: KindGeneratedID, id: id} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() bool { return v.b }

func (v Value) Int() int64 { return v.i }

func (v Value) Float() float64 { return v.f }

func (v Value) Str() string { return v.s }

func (v Value) Doc() Document { return v.doc }

func (v Value) Array() []Value { return v.arr }

func (v Value) GeneratedID() [12]byte { return v.id }

// Hex returns the 24 character hex form of a generated identifier
func (v Value) Hex() string { return hex.EncodeToString(v.id[:]) }

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindDocument:
		return v.doc.String()
	case KindArray:
		return fmt.Sprintf("%v", v.arr)
	case KindGeneratedID:
		return "ObjectID(" + v.Hex() + ")"
	}
	return v.kind.String()
}
