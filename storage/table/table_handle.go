// grounded on original_source/src/system/handle/table_handle.cpp.
// CreatePageHandle/CreateNewPageHandle/WrapPageHandle there become
// getOrCreatePage/newPage/wrap here. Error returns replace exceptions
// per the teacher's own idiom (error values, not panics, except for the
// Fatal/unreachable case of an unknown storage model).

package table

import (
	"github.com/nju-wsdb/gowsdb/common"
	"github.com/nju-wsdb/gowsdb/errs"
	"github.com/nju-wsdb/gowsdb/storage/buffer"
	"github.com/nju-wsdb/gowsdb/storage/page"
	"github.com/nju-wsdb/gowsdb/types"
)

// Handle owns one table's header, schema and storage model, and drives
// the buffer pool to read/mutate its pages (spec §4.4).
type Handle struct {
	fileID types.FileID
	hdr    *Header
	schema *Schema
	model  StorageModel
	bpm    *buffer.BufferPoolManager
}

func NewHandle(fileID types.FileID, hdr *Header, schema *Schema, bpm *buffer.BufferPoolManager) *Handle {
	return &Handle{fileID: fileID, hdr: hdr, schema: schema, model: hdr.model, bpm: bpm}
}

func (t *Handle) Header() *Header   { return t.hdr }
func (t *Handle) Schema() *Schema   { return t.schema }
func (t *Handle) FileID() types.FileID { return t.fileID }

func (t *Handle) wrap(p *page.Page) page.Handle {
	switch t.model {
	case NAryModel:
		return page.NewNAryHandle(p, int(t.hdr.BitMapSize), int(t.hdr.NullMapSize), int(t.hdr.RecSize), int(t.hdr.RecPerPage))
	case PAXModel:
		return page.NewPAXHandle(p, int(t.hdr.BitMapSize), int(t.hdr.NullMapSize), t.hdr.fieldSizes, t.hdr.fieldOffset, int(t.hdr.RecPerPage))
	default:
		errs.Fatal("unknown storage model")
		return nil
	}
}

func (t *Handle) fetchHandle(pid types.PageID) (page.Handle, error) {
	p, err := t.bpm.FetchPage(t.fileID, pid)
	if err != nil {
		return nil, err
	}
	return t.wrap(p), nil
}

// getOrCreatePage returns a page handle with at least one free slot,
// allocating a fresh page if the table has none (spec §4.4 step 1-2).
func (t *Handle) getOrCreatePage() (page.Handle, error) {
	if t.hdr.FirstFreePage == types.InvalidPageID {
		return t.newPage()
	}
	return t.fetchHandle(t.hdr.FirstFreePage)
}

// newPage allocates page_num as a fresh page and threads it at the head
// of the free list before returning it pinned (spec §4.4, §9's "first-page
// bookkeeping" note: page_num++ and the free-list link happen together,
// before any insert can observe the page, so an empty table's first
// insert always sees it).
func (t *Handle) newPage() (page.Handle, error) {
	pid := types.PageID(t.hdr.PageNum)
	t.hdr.PageNum++
	p, err := t.bpm.NewPage(t.fileID, pid)
	if err != nil {
		return nil, err
	}
	p.SetNextFreePageID(t.hdr.FirstFreePage)
	t.hdr.FirstFreePage = pid
	return t.wrap(p), nil
}

// GetRecord fetches the record at rid, or errs.ErrRecordMiss if its slot
// is empty.
func (t *Handle) GetRecord(rid types.RID) (*Record, error) {
	ph, err := t.fetchHandle(rid.GetPageId())
	if err != nil {
		return nil, err
	}
	slot := int(rid.GetSlot())
	if !page.BitMapGet(ph.Bitmap(), slot) {
		t.bpm.UnpinPage(t.fileID, rid.GetPageId(), false)
		return nil, errs.ErrRecordMiss
	}
	nullMap := make([]byte, t.hdr.NullMapSize)
	data := make([]byte, t.hdr.RecSize)
	ph.ReadSlot(slot, nullMap, data)
	t.bpm.UnpinPage(t.fileID, rid.GetPageId(), false)
	return NewRecord(t.schema, nullMap, data, rid), nil
}

// GetChunk materializes field fieldIdx across every occupied slot of pid.
// PAX-only: the caller must check the storage model first (spec §9).
func (t *Handle) GetChunk(pid types.PageID, fieldIdx int) ([]page.ColumnValue, error) {
	if t.model != PAXModel {
		errs.Fatal("GetChunk called on a non-PAX table")
	}
	p, err := t.bpm.FetchPage(t.fileID, pid)
	if err != nil {
		return nil, err
	}
	ph := t.wrap(p).(*page.PAXHandle)
	chunk := ph.ReadChunk(fieldIdx)
	t.bpm.UnpinPage(t.fileID, pid, false)
	return chunk, nil
}

// InsertRecord writes record at the first free slot of a not-full page,
// allocating one if the table has none (spec §4.4).
func (t *Handle) InsertRecord(record *Record) (types.RID, error) {
	ph, err := t.getOrCreatePage()
	if err != nil {
		return types.InvalidRID, err
	}
	slot := page.BitMapFindFirst(ph.Bitmap(), int(t.hdr.RecPerPage), 0, false)
	ph.WriteSlot(slot, record.NullMap(), record.Data(), false)
	page.BitMapSet(ph.Bitmap(), slot, true)
	t.hdr.RecNum++
	rid := types.NewRID(ph.Page().ID(), uint32(slot))

	if page.BitMapFindFirst(ph.Bitmap(), int(t.hdr.RecPerPage), 0, false) == int(t.hdr.RecPerPage) {
		t.hdr.FirstFreePage = ph.Page().NextFreePageID()
		ph.Page().SetNextFreePageID(types.InvalidPageID)
	}
	t.bpm.UnpinPage(t.fileID, ph.Page().ID(), true)
	return rid, nil
}

// InsertRecordAt writes record at a caller-chosen rid. Fails ErrPageMiss
// for an invalid page id, ErrRecordExists if the slot is occupied.
func (t *Handle) InsertRecordAt(rid types.RID, record *Record) error {
	if rid.GetPageId() == types.InvalidPageID {
		return errs.ErrPageMiss
	}
	ph, err := t.fetchHandle(rid.GetPageId())
	if err != nil {
		return err
	}
	slot := int(rid.GetSlot())
	if page.BitMapGet(ph.Bitmap(), slot) {
		t.bpm.UnpinPage(t.fileID, rid.GetPageId(), false)
		return errs.ErrRecordExists
	}
	ph.WriteSlot(slot, record.NullMap(), record.Data(), false)
	page.BitMapSet(ph.Bitmap(), slot, true)
	t.hdr.RecNum++

	if page.BitMapFindFirst(ph.Bitmap(), int(t.hdr.RecPerPage), 0, false) == int(t.hdr.RecPerPage) {
		t.hdr.FirstFreePage = ph.Page().NextFreePageID()
		ph.Page().SetNextFreePageID(types.InvalidPageID)
	}
	t.bpm.UnpinPage(t.fileID, rid.GetPageId(), true)
	return nil
}

// DeleteRecord clears rid's slot. The payload bytes are not zeroed. If
// the page was previously full, it is relinked at the head of the free
// list (spec §4.4).
func (t *Handle) DeleteRecord(rid types.RID) error {
	ph, err := t.fetchHandle(rid.GetPageId())
	if err != nil {
		return err
	}
	slot := int(rid.GetSlot())
	if !page.BitMapGet(ph.Bitmap(), slot) {
		t.bpm.UnpinPage(t.fileID, rid.GetPageId(), false)
		return errs.ErrRecordMiss
	}
	wasFull := page.BitMapFindFirst(ph.Bitmap(), int(t.hdr.RecPerPage), 0, false) == int(t.hdr.RecPerPage)
	page.BitMapSet(ph.Bitmap(), slot, false)
	t.hdr.RecNum--
	if wasFull {
		ph.Page().SetNextFreePageID(t.hdr.FirstFreePage)
		t.hdr.FirstFreePage = rid.GetPageId()
		common.Trace("table relink free page", "fid", t.fileID, "pid", rid.GetPageId())
	}
	t.bpm.UnpinPage(t.fileID, rid.GetPageId(), true)
	return nil
}

// UpdateRecord overwrites rid's slot in place.
func (t *Handle) UpdateRecord(rid types.RID, record *Record) error {
	ph, err := t.fetchHandle(rid.GetPageId())
	if err != nil {
		return err
	}
	slot := int(rid.GetSlot())
	if !page.BitMapGet(ph.Bitmap(), slot) {
		t.bpm.UnpinPage(t.fileID, rid.GetPageId(), false)
		return errs.ErrRecordMiss
	}
	ph.WriteSlot(slot, record.NullMap(), record.Data(), true)
	t.bpm.UnpinPage(t.fileID, rid.GetPageId(), true)
	return nil
}

// GetFirstRID returns the RID of the first occupied slot, scanning from
// page id 1 (page 0 is reserved for the table header), or InvalidRID if
// the table is empty. This defines SeqScan's visitation order.
func (t *Handle) GetFirstRID() (types.RID, error) {
	pid := types.PageID(common.HeaderPageID + 1)
	for int(pid) < int(t.hdr.PageNum) {
		ph, err := t.fetchHandle(pid)
		if err != nil {
			return types.InvalidRID, err
		}
		slot := page.BitMapFindFirst(ph.Bitmap(), int(t.hdr.RecPerPage), 0, true)
		t.bpm.UnpinPage(t.fileID, pid, false)
		if slot != int(t.hdr.RecPerPage) {
			return types.NewRID(pid, uint32(slot)), nil
		}
		pid++
	}
	return types.InvalidRID, nil
}

// GetNextRID returns the RID following rid in visitation order, or
// InvalidRID at end.
func (t *Handle) GetNextRID(rid types.RID) (types.RID, error) {
	pid := rid.GetPageId()
	from := int(rid.GetSlot()) + 1
	for int(pid) < int(t.hdr.PageNum) {
		ph, err := t.fetchHandle(pid)
		if err != nil {
			return types.InvalidRID, err
		}
		slot := page.BitMapFindFirst(ph.Bitmap(), int(t.hdr.RecPerPage), from, true)
		t.bpm.UnpinPage(t.fileID, pid, false)
		if slot != int(t.hdr.RecPerPage) {
			return types.NewRID(pid, uint32(slot)), nil
		}
		pid++
		from = 0
	}
	return types.InvalidRID, nil
}
