package mongo

import (
	"encoding/base64"
	"fmt"
	"math"
	"sort"
	"time"

	"mongosync/pkg/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FromBSON converts a driver document into a document.Document. BSON types
// without a JSON counterpart are flattened to strings.
func FromBSON(d bson.D) (document.Document, error) {
	doc := make(document.Document, 0, len(d))
	for _, e := range d {
		v, err := fromBSONValue(e.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", e.Key, err)
		}
		doc = append(doc, document.Field{Key: e.Key, Value: v})
	}
	return doc, nil
}

func fromBSONValue(v interface{}) (document.Value, error) {
	switch t := v.(type) {
	case nil, primitive.Null, primitive.Undefined:
		return document.Null(), nil
	case bool:
		return document.Bool(t), nil
	case int32:
		return document.Int(int64(t)), nil
	case int64:
		return document.Int(t), nil
	case int:
		return document.Int(int64(t)), nil
	case float64:
		return document.Float(t), nil
	case string:
		return document.String(t), nil
	case primitive.ObjectID:
		return document.GeneratedID(t), nil
	case primitive.D:
		doc, err := FromBSON(bson.D(t))
		if err != nil {
			return document.Value{}, err
		}
		return document.Doc(doc), nil
	case primitive.M:
		return fromMap(t)
	case map[string]interface{}:
		return fromMap(t)
	case primitive.A:
		return fromSlice(t)
	case []interface{}:
		return fromSlice(t)
	case primitive.DateTime:
		return document.String(t.Time().UTC().Format(time.RFC3339Nano)), nil
	case primitive.Decimal128:
		return document.String(t.String()), nil
	case primitive.Binary:
		return document.String(base64.StdEncoding.EncodeToString(t.Data)), nil
	case primitive.Regex:
		return document.String(t.String()), nil
	case primitive.JavaScript:
		return document.String(string(t)), nil
	case primitive.Symbol:
		return document.String(string(t)), nil
	case primitive.Timestamp:
		return document.String(fmt.Sprintf("Timestamp(%d, %d)", t.T, t.I)), nil
	case primitive.MinKey:
		return document.String("MinKey"), nil
	case primitive.MaxKey:
		return document.String("MaxKey"), nil
	default:
		return document.String(fmt.Sprint(t)), nil
	}
}

// fromMap sorts keys since maps carry no order
func fromMap(m map[string]interface{}) (document.Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := make(bson.D, 0, len(keys))
	for _, k := range keys {
		d = append(d, bson.E{Key: k, Value: m[k]})
	}
	doc, err := FromBSON(d)
	if err != nil {
		return document.Value{}, err
	}
	return document.Doc(doc), nil
}

func fromSlice(s []interface{}) (document.Value, error) {
	arr := make([]document.Value, 0, len(s))
	for i, el := range s {
		v, err := fromBSONValue(el)
		if err != nil {
			return document.Value{}, fmt.Errorf("index %d: %w", i, err)
		}
		arr = append(arr, v)
	}
	return document.Array(arr...), nil
}

// ToBSON converts a document into a driver document ready for insertion
func ToBSON(doc document.Document) bson.D {
	d := make(bson.D, 0, len(doc))
	for _, f := range doc {
		d = append(d, bson.E{Key: f.Key, Value: toBSONValue(f.Value)})
	}
	return d
}

func toBSONValue(v document.Value) interface{} {
	switch v.Kind() {
	case document.KindBool:
		return v.Bool()
	case document.KindInt:
		if v.Int() >= math.MinInt32 && v.Int() <= math.MaxInt32 {
			return int32(v.Int())
		}
		return v.Int()
	case document.KindFloat:
		return v.Float()
	case document.KindString:
		return v.Str()
	case document.KindGeneratedID:
		return primitive.ObjectID(v.GeneratedID())
	case document.KindDocument:
		return ToBSON(v.Doc())
	case document.KindArray:
		arr := make(bson.A, len(v.Array()))
		for i, el := range v.Array() {
			arr[i] = toBSONValue(el)
		}
		return arr
	default:
		return nil
	}
}
