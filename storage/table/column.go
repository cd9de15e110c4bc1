// grounded on the teacher's storage/table/column.go, simplified to the
// fixed-width-only model of spec §3/§4.3: every column, varchar included,
// has a caller-declared size and a byte offset within the row-packed
// payload. There is no inlined/uninlined distinction because there is no
// variable-length storage in this core.

package table

import "github.com/nju-wsdb/gowsdb/types"

// Column is one field of a Schema: {name, type, size} per spec §3.
type Column struct {
	name   string
	typ    types.TypeID
	size   uint32
	offset uint32 // byte offset within the row-packed payload, set by NewSchema
}

// NewColumn declares a column. size is the fixed byte width of its
// payload; for Integer/Float/Boolean this is normally typ.FixedSize(),
// for Varchar the caller picks the column's declared capacity.
func NewColumn(name string, typ types.TypeID, size uint32) *Column {
	return &Column{name: name, typ: typ, size: size}
}

func (c *Column) Name() string      { return c.name }
func (c *Column) Type() types.TypeID { return c.typ }
func (c *Column) Size() uint32      { return c.size }
func (c *Column) Offset() uint32    { return c.offset }
