// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package types

// TypeID identifies the SQL type of a Value or a Column.
type TypeID int

const (
	Invalid TypeID = iota
	Boolean
	Integer
	Float
	Varchar
)

// FixedSize returns the number of payload bytes a value of this type
// occupies in a fixed-width record, excluding the type's entry in the
// nullmap. Varchar has no intrinsic fixed size; callers must supply the
// column's declared size instead (see Column.Size).
func (t TypeID) FixedSize() uint32 {
	switch t {
	case Integer:
		return 4
	case Float:
		return 4
	case Boolean:
		return 1
	default:
		return 0
	}
}
