// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir
//
// adapted for the fixed-width record layout of spec §3/§4.3: Serialize
// and Deserialize work against a caller-supplied fixed field size instead
// of a variable-length length-prefixed encoding.

package types

import (
	"bytes"
	"encoding/binary"
)

// Value is a typed, possibly-null column value.
type Value struct {
	valueType TypeID
	isNull    bool
	integer   int32
	boolean   bool
	varchar   string
	float     float32
}

func NewInteger(value int32) Value   { return Value{valueType: Integer, integer: value} }
func NewFloat(value float32) Value   { return Value{valueType: Float, float: value} }
func NewBoolean(value bool) Value    { return Value{valueType: Boolean, boolean: value} }
func NewVarchar(value string) Value  { return Value{valueType: Varchar, varchar: value} }

// NewNull returns a null value of the given type.
func NewNull(t TypeID) Value {
	return Value{valueType: t, isNull: true}
}

func (v Value) ValueType() TypeID { return v.valueType }
func (v Value) IsNull() bool      { return v.isNull }

func (v Value) ToInteger() int32  { return v.integer }
func (v Value) ToFloat() float32  { return v.float }
func (v Value) ToBoolean() bool   { return v.boolean }
func (v Value) ToVarchar() string { return v.varchar }

func (v Value) CompareEquals(right Value) bool {
	if v.isNull && right.isNull {
		return true
	} else if v.isNull || right.isNull {
		return false
	}
	switch v.valueType {
	case Integer:
		return v.integer == right.integer
	case Float:
		return v.float == right.float
	case Varchar:
		return v.varchar == right.varchar
	case Boolean:
		return v.boolean == right.boolean
	}
	return false
}

func (v Value) CompareLessThan(right Value) bool {
	if v.isNull || right.isNull {
		return false
	}
	switch v.valueType {
	case Integer:
		return v.integer < right.integer
	case Float:
		return v.float < right.float
	case Varchar:
		return v.varchar < right.varchar
	default:
		return false
	}
}

func (v Value) CompareGreaterThan(right Value) bool {
	return right.CompareLessThan(v)
}

// SerializeFixed packs v into exactly width bytes: the field's nullmap
// bit is set separately by the caller (the record constructor), this
// returns only the payload bytes; a null value yields all zero bytes. Varchar is padded with zero bytes up to width, or
// truncated if the string is longer than the column's declared size.
func (v Value) SerializeFixed(width uint32) []byte {
	out := make([]byte, width)
	if v.isNull {
		return out
	}
	switch v.valueType {
	case Integer:
		binary.LittleEndian.PutUint32(out, uint32(v.integer))
	case Float:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.float)
		copy(out, buf.Bytes())
	case Boolean:
		if v.boolean {
			out[0] = 1
		}
	case Varchar:
		copy(out, []byte(v.varchar))
	}
	return out
}

// DeserializeFixed is the inverse of SerializeFixed. isNull is supplied by
// the caller (read out of the record's nullmap), since the payload bytes
// alone cannot distinguish a null from a zero value.
func DeserializeFixed(data []byte, t TypeID, isNull bool) Value {
	if isNull {
		return NewNull(t)
	}
	switch t {
	case Integer:
		return NewInteger(int32(binary.LittleEndian.Uint32(data)))
	case Float:
		var f float32
		binary.Read(bytes.NewReader(data), binary.LittleEndian, &f)
		return NewFloat(f)
	case Boolean:
		return NewBoolean(data[0] != 0)
	case Varchar:
		end := bytes.IndexByte(data, 0)
		if end < 0 {
			end = len(data)
		}
		return NewVarchar(string(data[:end]))
	default:
		return Value{}
	}
}
