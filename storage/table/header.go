// grounded on original_source/src/system/handle/table_handle.cpp's
// TableHeader fields (page_num_, first_free_page_, rec_per_page_,
// rec_size_, nullmap_size_, bitmap_size_, rec_num_) and the PAX
// field_offset_ precomputation in its constructor.

package table

import (
	"github.com/nju-wsdb/gowsdb/common"
	"github.com/nju-wsdb/gowsdb/storage/page"
	"github.com/nju-wsdb/gowsdb/types"
)

// StorageModel names which page handle variant a table uses (spec §4.3).
type StorageModel int

const (
	NAryModel StorageModel = iota
	PAXModel
)

// Header is the persisted metadata of one table (spec §3). It is owned
// by exactly one TableHandle; concurrent writers to one table are not
// supported in this core (spec §5).
type Header struct {
	PageNum       uint32
	FirstFreePage types.PageID
	RecPerPage    uint32
	RecSize       uint32
	NullMapSize   uint32
	BitMapSize    uint32
	RecNum        uint32

	model       StorageModel
	fieldSizes  []int // PAX only
	fieldOffset []int // PAX only, from slots_mem base
}

// NewHeader derives rec_per_page, bitmap_size and (for PAX) the column
// band offsets from schema and the page's available body size.
func NewHeader(schema *Schema, model StorageModel) *Header {
	// page common.HeaderPageID is reserved (never allocated via newPage);
	// the first record page a table gets is the one after it, matching
	// GetFirstRID's scan start.
	h := &Header{FirstFreePage: types.InvalidPageID, PageNum: common.HeaderPageID + 1, model: model}
	h.RecSize = schema.RecSize()
	h.NullMapSize = uint32(NullMapSize(schema))

	available := common.PageSize - page.PageHeaderSize
	// rec_per_page must satisfy:
	//   bitmap_size(rec_per_page) + rec_per_page*(nullmap_size+rec_size) <= available
	// solved by search since bitmap_size itself depends on rec_per_page.
	recSlot := h.NullMapSize + h.RecSize
	n := uint32(1)
	for {
		bm := uint32(page.BitMapSize(int(n + 1)))
		if int(bm)+int(n+1)*int(recSlot) > available {
			break
		}
		n++
	}
	h.RecPerPage = n
	h.BitMapSize = uint32(page.BitMapSize(int(n)))

	if model == PAXModel {
		h.fieldSizes = make([]int, schema.ColumnCount())
		h.fieldOffset = make([]int, schema.ColumnCount())
		offset := int(h.NullMapSize) * int(h.RecPerPage)
		for i, col := range schema.Columns() {
			h.fieldSizes[i] = int(col.Size())
			h.fieldOffset[i] = offset
			offset += int(col.Size()) * int(h.RecPerPage)
		}
	}
	return h
}
