// grounded on the teacher's storage/table/tuple.go for the overall shape
// (schema + byte buffer + optional RID) but reworked to the fixed-width
// record of spec §3 and to types.Value's SerializeFixed/DeserializeFixed
// instead of the teacher's unsafe.Pointer byte-copying, which cannot
// express varchar and handles only Integer.

package table

import "github.com/nju-wsdb/gowsdb/types"

// NullMapSize returns the number of bytes needed for one nullmap bit per
// field of the schema (spec §3: nullmap_size).
func NullMapSize(s *Schema) int {
	return (s.ColumnCount() + 7) / 8
}

// Record is (schema, nullmap bytes, payload bytes) plus an optional RID,
// per spec §3.
type Record struct {
	schema  *Schema
	nullMap []byte
	data    []byte
	rid     types.RID
}

// NewRecordFromValues serializes values field-by-field into a fresh
// record over schema, setting the nullmap bit for any value that IsNull.
func NewRecordFromValues(schema *Schema, values []types.Value) *Record {
	nullMap := make([]byte, NullMapSize(schema))
	data := make([]byte, schema.RecSize())
	for i, col := range schema.Columns() {
		v := values[i]
		if v.IsNull() {
			nullMap[i/8] |= 1 << uint(i%8)
		}
		copy(data[col.Offset():col.Offset()+col.Size()], v.SerializeFixed(col.Size()))
	}
	return &Record{schema: schema, nullMap: nullMap, data: data, rid: types.InvalidRID}
}

// NewRecord wraps already-serialized bytes read off a page, as produced
// by a page handle's ReadSlot.
func NewRecord(schema *Schema, nullMap, data []byte, rid types.RID) *Record {
	return &Record{schema: schema, nullMap: append([]byte(nil), nullMap...), data: append([]byte(nil), data...), rid: rid}
}

// NewRecordProjection builds a new record over outSchema by copying the
// named fields out of src ("the Record(schema, other_record) constructor"
// of spec §4.5.3). A field of outSchema absent from src's schema is left
// null.
func NewRecordProjection(outSchema *Schema, src *Record) *Record {
	values := make([]types.Value, outSchema.ColumnCount())
	for i, col := range outSchema.Columns() {
		srcIdx := src.schema.ColumnIndex(col.Name())
		if srcIdx < 0 {
			values[i] = types.NewNull(col.Type())
			continue
		}
		values[i] = src.Value(srcIdx)
	}
	r := NewRecordFromValues(outSchema, values)
	r.rid = src.rid
	return r
}

func (r *Record) Schema() *Schema   { return r.schema }
func (r *Record) NullMap() []byte   { return r.nullMap }
func (r *Record) Data() []byte      { return r.data }
func (r *Record) RID() types.RID    { return r.rid }
func (r *Record) SetRID(rid types.RID) { r.rid = rid }

func (r *Record) IsNull(idx int) bool {
	return r.nullMap[idx/8]&(1<<uint(idx%8)) != 0
}

// Value deserializes field idx against the record's own schema.
func (r *Record) Value(idx int) types.Value {
	col := r.schema.Column(idx)
	return types.DeserializeFixed(r.data[col.Offset():col.Offset()+col.Size()], col.Type(), r.IsNull(idx))
}

// ValueNamed looks up a field by name.
func (r *Record) ValueNamed(name string) (types.Value, bool) {
	idx := r.schema.ColumnIndex(name)
	if idx < 0 {
		return types.Value{}, false
	}
	return r.Value(idx), true
}

// Equals compares r and other field-by-field against keySchema (spec §3:
// "equality and ordering are defined field-by-field against a projection
// schema").
func (r *Record) Equals(other *Record, keySchema *Schema) bool {
	for _, col := range keySchema.Columns() {
		ri, oi := r.schema.ColumnIndex(col.Name()), other.schema.ColumnIndex(col.Name())
		if ri < 0 || oi < 0 {
			return false
		}
		if !r.Value(ri).CompareEquals(other.Value(oi)) {
			return false
		}
	}
	return true
}

// Less orders r before other field-by-field against keySchema, stopping
// at the first field that differs.
func (r *Record) Less(other *Record, keySchema *Schema) bool {
	for _, col := range keySchema.Columns() {
		ri, oi := r.schema.ColumnIndex(col.Name()), other.schema.ColumnIndex(col.Name())
		rv, ov := r.Value(ri), other.Value(oi)
		if rv.CompareEquals(ov) {
			continue
		}
		return rv.CompareLessThan(ov)
	}
	return false
}
