package mongo

import (
	"testing"
	"time"

	"mongosync/pkg/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFromBSON(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	raw := bson.D{
		{Key: "_id", Value: oid},
		{Key: "name", Value: "Ada"},
		{Key: "age", Value: int32(36)},
		{Key: "visits", Value: int64(1 << 40)},
		{Key: "score", Value: 98.5},
		{Key: "active", Value: true},
		{Key: "nickname", Value: nil},
		{Key: "created_at", Value: primitive.NewDateTimeFromTime(created)},
		{Key: "address", Value: bson.D{{Key: "city", Value: "London"}}},
		{Key: "tags", Value: bson.A{"a", int32(2), nil}},
		{Key: "meta", Value: bson.M{"b": int32(2), "a": int32(1)}},
		{Key: "blob", Value: primitive.Binary{Data: []byte("hi")}},
	}

	doc, err := FromBSON(raw)
	require.NoError(t, err)

	expected := document.Document{
		{Key: "_id", Value: document.GeneratedID(oid)},
		{Key: "name", Value: document.String("Ada")},
		{Key: "age", Value: document.Int(36)},
		{Key: "visits", Value: document.Int(1 << 40)},
		{Key: "score", Value: document.Float(98.5)},
		{Key: "active", Value: document.Bool(true)},
		{Key: "nickname", Value: document.Null()},
		{Key: "created_at", Value: document.String("2024-03-01T12:30:00Z")},
		{Key: "address", Value: document.Doc(document.Document{{Key: "city", Value: document.String("London")}})},
		{Key: "tags", Value: document.Array(document.String("a"), document.Int(2), document.Null())},
		{Key: "meta", Value: document.Doc(document.Document{
			{Key: "a", Value: document.Int(1)},
			{Key: "b", Value: document.Int(2)},
		})},
		{Key: "blob", Value: document.String("aGk=")},
	}
	assert.Equal(t, expected, doc)
	assert.True(t, doc.HasGeneratedID())
}

func TestToBSON(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := document.Document{
		{Key: "owner", Value: document.GeneratedID(oid)},
		{Key: "small", Value: document.Int(7)},
		{Key: "big", Value: document.Int(1 << 40)},
		{Key: "ratio", Value: document.Float(0.5)},
		{Key: "none", Value: document.Null()},
		{Key: "nested", Value: document.Doc(document.Document{{Key: "ok", Value: document.Bool(true)}})},
		{Key: "list", Value: document.Array(document.String("x"), document.Array())},
	}

	expected := bson.D{
		{Key: "owner", Value: oid},
		{Key: "small", Value: int32(7)},
		{Key: "big", Value: int64(1 << 40)},
		{Key: "ratio", Value: 0.5},
		{Key: "none", Value: nil},
		{Key: "nested", Value: bson.D{{Key: "ok", Value: true}}},
		{Key: "list", Value: bson.A{"x", bson.A{}}},
	}
	assert.Equal(t, expected, ToBSON(doc))
}

func TestBSONRoundTrip(t *testing.T) {
	doc := document.Document{
		{Key: "_id", Value: document.String("custom")},
		{Key: "n", Value: document.Int(-3)},
		{Key: "arr", Value: document.Array(document.Doc(document.Document{{Key: "x", Value: document.Float(1.25)}}))},
	}

	back, err := FromBSON(ToBSON(doc))
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}
