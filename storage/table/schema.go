// grounded on the teacher's storage/table/schema.go (column-offset
// precomputation in the constructor), stripped of the inlined/uninlined
// split that doesn't apply to a fixed-width-only record.

package table

// Schema is an ordered list of fields, each {name, type, size} (spec §3).
// Supports lookup by index and by field identity (name).
type Schema struct {
	recSize uint32
	columns []*Column
}

// NewSchema computes each column's byte offset within the row-packed
// payload and the total fixed record size.
func NewSchema(columns []*Column) *Schema {
	s := &Schema{columns: columns}
	var offset uint32
	for _, c := range columns {
		c.offset = offset
		offset += c.size
	}
	s.recSize = offset
	return s
}

func (s *Schema) RecSize() uint32 { return s.recSize }

func (s *Schema) ColumnCount() int { return len(s.columns) }

func (s *Schema) Column(idx int) *Column { return s.columns[idx] }

func (s *Schema) Columns() []*Column { return s.columns }

// ColumnIndex returns the index of the named column, or -1 if absent.
func (s *Schema) ColumnIndex(name string) int {
	for i, c := range s.columns {
		if c.name == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether name is a field of this schema.
func (s *Schema) HasColumn(name string) bool {
	return s.ColumnIndex(name) >= 0
}
