package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Config holds the settings shared by every encode call of a run
type Config struct {
	// Indent is the per-level indentation of snapshot arrays. Empty means compact output.
	Indent string
	// SerializeNulls writes null-valued fields instead of dropping them
	SerializeNulls bool
}

// DefaultConfig is pretty-printed with explicit nulls
func DefaultConfig() Config {
	return Config{Indent: "  ", SerializeNulls: true}
}

// Codec converts documents to and from JSON. It holds no mutable state.
type Codec struct {
	cfg Config
}

func NewCodec(cfg Config) *Codec {
	return &Codec{cfg: cfg}
}

// Encode serializes a document as a compact JSON object, preserving field order.
// A top-level _id holding a generated identifier is left out of the output.
func (c *Codec) Encode(d Document) (json.RawMessage, error) {
	if d.HasGeneratedID() {
		d = d.Without(IDField)
	}
	var buf bytes.Buffer
	if err := c.writeDocument(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalArray joins encoded elements into one JSON array, indented per Config
func (c *Codec) MarshalArray(elements []json.RawMessage) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, el := range elements {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.Write(el)
	}
	compact.WriteByte(']')

	if c.cfg.Indent == "" {
		compact.WriteByte('\n')
		return compact.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", c.cfg.Indent); err != nil {
		return nil, fmt.Errorf("failed to indent array: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// SplitArray returns the elements of a top-level JSON array
func (c *Codec) SplitArray(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty input, expected a JSON array")
	}
	if trimmed[0] != '[' {
		return nil, errors.New("expected a JSON array")
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// Decode parses a single JSON object into a document
func (c *Codec) Decode(raw json.RawMessage) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, errors.New("empty element, expected a JSON object")
	}
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	doc, err := decodeObject(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return doc, nil
}

// DecodeSnapshot decodes a whole snapshot file. Either every element decodes or
// none are returned.
func (c *Codec) DecodeSnapshot(source string, data []byte) ([]Document, error) {
	elements, err := c.SplitArray(data)
	if err != nil {
		return nil, &DecodeError{Source: source, Index: -1, Err: err}
	}

	docs := make([]Document, 0, len(elements))
	for i, el := range elements {
		doc, err := c.Decode(el)
		if err != nil {
			return nil, &DecodeError{Source: source, Index: i, Err: err}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (c *Codec) writeDocument(buf *bytes.Buffer, d Document) error {
	buf.WriteByte('{')
	first := true
	for _, f := range d {
		if f.Value.IsNull() && !c.cfg.SerializeNulls {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeString(buf, f.Key)
		buf.WriteByte(':')
		if err := c.writeValue(buf, f.Value); err != nil {
			return fmt.Errorf("field %q: %w", f.Key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func (c *Codec) writeValue(buf *bytes.Buffer, v Value) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case KindFloat:
		return writeFloat(buf, v.Float())
	case KindString:
		writeString(buf, v.Str())
	case KindGeneratedID:
		writeString(buf, v.Hex())
	case KindDocument:
		return c.writeDocument(buf, v.Doc())
	case KindArray:
		buf.WriteByte('[')
		for i, el := range v.Array() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := c.writeValue(buf, el); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("unsupported value kind %s", v.Kind())
	}
	return nil
}

// writeFloat always emits a fraction or exponent so the number decodes back as a float
func writeFloat(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("unsupported float value %v", f)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	buf.WriteString(s)
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}

func decodeObject(dec *json.Decoder) (Document, error) {
	doc := Document{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		doc = doc.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return parseNumber(t)
	case json.Delim:
		switch t {
		case '{':
			doc, err := decodeObject(dec)
			if err != nil {
				return Value{}, err
			}
			return Doc(doc), nil
		case '[':
			arr := []Value{}
			for dec.More() {
				el, err := decodeValue(dec)
				if err != nil {
					return Value{}, fmt.Errorf("index %d: %w", len(arr), err)
				}
				arr = append(arr, el)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Array(arr...), nil
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

// parseNumber keeps integral literals as ints when they fit in 64 bits
func parseNumber(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %s: %w", s, err)
	}
	return Float(f), nil
}
