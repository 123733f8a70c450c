package document

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func nan() float64 { return math.NaN() }

func TestDocument_SetKeepsPosition(t *testing.T) {
	d := Document{{Key: "a", Value: Int(1)}, {Key: "b", Value: Int(2)}}
	d = d.Set("a", String("x"))
	d = d.Set("c", Null())

	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())
	v, ok := d.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "x", v.Str())
}

func TestDocument_Without(t *testing.T) {
	d := Document{{Key: "_id", Value: Int(1)}, {Key: "b", Value: Int(2)}}
	out := d.Without("_id")

	assert.Equal(t, []string{"b"}, out.Keys())
	assert.Equal(t, []string{"_id", "b"}, d.Keys())
}

func TestDocument_HasGeneratedID(t *testing.T) {
	assert.True(t, Document{{Key: "_id", Value: GeneratedID(sampleID)}}.HasGeneratedID())
	assert.False(t, Document{{Key: "_id", Value: String("651f3c2a0001020304050607")}}.HasGeneratedID())
	assert.False(t, Document{{Key: "owner", Value: GeneratedID(sampleID)}}.HasGeneratedID())
	assert.False(t, Document{}.HasGeneratedID())
}

func TestValue_Constructors(t *testing.T) {
	assert.Equal(t, KindNull, Value{}.Kind())
	assert.Equal(t, []Value{}, Array().Array())
	assert.Equal(t, Document{}, Doc(nil).Doc())
	assert.Equal(t, "651f3c2a0001020304050607", GeneratedID(sampleID).Hex())
	assert.Equal(t, "generated-id", KindGeneratedID.String())
}
