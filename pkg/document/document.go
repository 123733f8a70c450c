package document

import "strings"

// IDField is the key of a document's identifier
const IDField = "_id"

// Field is a single key/value pair of a Document
type Field struct {
	Key   string
	Value Value
}

// Document is an ordered mapping of field names to values
type Document []Field

// Get returns the value stored under key
func (d Document) Get(key string) (Value, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Set replaces the value of an existing key in place, or appends a new field.
func (d Document) Set(key string, v Value) Document {
	for i := range d {
		if d[i].Key == key {
			d[i].Value = v
			return d
		}
	}
	return append(d, Field{Key: key, Value: v})
}

// Without returns a copy of the document with key removed
func (d Document) Without(key string) Document {
	out := make(Document, 0, len(d))
	for _, f := range d {
		if f.Key != key {
			out = append(out, f)
		}
	}
	return out
}

func (d Document) Keys() []string {
	keys := make([]string, len(d))
	for i, f := range d {
		keys[i] = f.Key
	}
	return keys
}

// HasGeneratedID reports whether the identifier field holds a database-generated identifier
func (d Document) HasGeneratedID() bool {
	id, ok := d.Get(IDField)
	return ok && id.Kind() == KindGeneratedID
}

func (d Document) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, f := range d {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Key)
		sb.WriteString(": ")
		sb.WriteString(f.Value.String())
	}
	sb.WriteString("}")
	return sb.String()
}
