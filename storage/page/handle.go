// grounded on original_source/src/system/handle/page_handle.cpp
// (PageHandle/NAryPageHandle/PAXPageHandle) and
// original_source/src/system/handle/table_handle.cpp (PAX offset
// precomputation in the TableHandle constructor). The base class there is
// a runtime-dispatched interface; per SPEC_FULL.md §9's redesign note this
// is rendered as two concrete Go types sharing the Handle contract,
// resolved once at the table handle rather than dispatched per call.

package page

import "github.com/nju-wsdb/gowsdb/common"

// Handle is a schema-aware accessor over one resident page's body. Both
// variants share a slot bitmap of bitmapSize bytes immediately after the
// page header (spec §4.3).
type Handle interface {
	Page() *Page
	Bitmap() []byte
	WriteSlot(slotID int, nullMap, data []byte, isUpdate bool)
	ReadSlot(slotID int, nullMap, data []byte)
}

// NAryHandle lays slots out row-major: each slot is a contiguous
// nullmapSize+recSize run immediately following the others (spec §4.3.1).
type NAryHandle struct {
	page        *Page
	bitmap      []byte
	slotsMem    []byte
	nullmapSize int
	recSize     int
	recPerPage  int
}

func NewNAryHandle(p *Page, bitmapSize, nullmapSize, recSize, recPerPage int) *NAryHandle {
	body := p.Data()[:]
	bitmap := body[PageHeaderSize : PageHeaderSize+bitmapSize]
	slotsMem := body[PageHeaderSize+bitmapSize:]
	return &NAryHandle{page: p, bitmap: bitmap, slotsMem: slotsMem, nullmapSize: nullmapSize, recSize: recSize, recPerPage: recPerPage}
}

func (h *NAryHandle) Page() *Page    { return h.page }
func (h *NAryHandle) Bitmap() []byte { return h.bitmap }

func (h *NAryHandle) WriteSlot(slotID int, nullMap, data []byte, isUpdate bool) {
	common.Assert(BitMapGet(h.bitmap, slotID) == isUpdate, "write slot update flag does not match occupancy bit")
	recFull := h.nullmapSize + h.recSize
	base := slotID * recFull
	copy(h.slotsMem[base:base+h.nullmapSize], nullMap)
	copy(h.slotsMem[base+h.nullmapSize:base+recFull], data)
}

func (h *NAryHandle) ReadSlot(slotID int, nullMap, data []byte) {
	recFull := h.nullmapSize + h.recSize
	base := slotID * recFull
	copy(nullMap, h.slotsMem[base:base+h.nullmapSize])
	copy(data, h.slotsMem[base+h.nullmapSize:base+recFull])
}

// PAXHandle lays slots out column-banded: all nullmaps first, then one
// band per field (spec §4.3.2). Band offsets are precomputed by the table
// handle and passed in, not recomputed here.
type PAXHandle struct {
	page        *Page
	bitmap      []byte
	slotsMem    []byte
	nullmapSize int
	fieldSizes  []int
	offsets     []int // offsets[k], from slotsMem base
	recPerPage  int
}

func NewPAXHandle(p *Page, bitmapSize, nullmapSize int, fieldSizes, offsets []int, recPerPage int) *PAXHandle {
	body := p.Data()[:]
	bitmap := body[PageHeaderSize : PageHeaderSize+bitmapSize]
	slotsMem := body[PageHeaderSize+bitmapSize:]
	return &PAXHandle{page: p, bitmap: bitmap, slotsMem: slotsMem, nullmapSize: nullmapSize, fieldSizes: fieldSizes, offsets: offsets, recPerPage: recPerPage}
}

func (h *PAXHandle) Page() *Page    { return h.page }
func (h *PAXHandle) Bitmap() []byte { return h.bitmap }

func (h *PAXHandle) WriteSlot(slotID int, nullMap, data []byte, isUpdate bool) {
	nmBase := slotID * h.nullmapSize
	copy(h.slotsMem[nmBase:nmBase+h.nullmapSize], nullMap)

	dataOffset := 0
	for k, size := range h.fieldSizes {
		fieldBase := h.offsets[k] + slotID*size
		copy(h.slotsMem[fieldBase:fieldBase+size], data[dataOffset:dataOffset+size])
		dataOffset += size
	}
}

func (h *PAXHandle) ReadSlot(slotID int, nullMap, data []byte) {
	nmBase := slotID * h.nullmapSize
	copy(nullMap, h.slotsMem[nmBase:nmBase+h.nullmapSize])

	dataOffset := 0
	for k, size := range h.fieldSizes {
		fieldBase := h.offsets[k] + slotID*size
		copy(data[dataOffset:dataOffset+size], h.slotsMem[fieldBase:fieldBase+size])
		dataOffset += size
	}
}

// ColumnValue is one (value-bytes, isNull) pair read out of a PAX band.
type ColumnValue struct {
	Data   []byte
	IsNull bool
}

// ReadChunk materializes field index fieldIdx across every occupied slot
// of the page, in slot order, skipping empty slots entirely (spec
// §4.3.2). The caller resolves fieldIdx against its own schema and maps
// null/data into typed values.
func (h *PAXHandle) ReadChunk(fieldIdx int) []ColumnValue {
	size := h.fieldSizes[fieldIdx]
	base := h.offsets[fieldIdx]
	out := make([]ColumnValue, 0, h.recPerPage)
	for slotID := 0; slotID < h.recPerPage; slotID++ {
		if !BitMapGet(h.bitmap, slotID) {
			continue
		}
		nmBase := slotID * h.nullmapSize
		isNull := BitMapGet(h.slotsMem[nmBase:nmBase+h.nullmapSize], fieldIdx)
		if isNull {
			out = append(out, ColumnValue{IsNull: true})
			continue
		}
		fieldBase := base + slotID*size
		out = append(out, ColumnValue{Data: h.slotsMem[fieldBase : fieldBase+size]})
	}
	return out
}
