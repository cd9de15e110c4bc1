package table

import (
	"testing"

	"github.com/nju-wsdb/gowsdb/internal/testutil"
	"github.com/nju-wsdb/gowsdb/storage/buffer"
	"github.com/nju-wsdb/gowsdb/storage/disk"
	"github.com/nju-wsdb/gowsdb/types"
)

func newTestHandle(t *testing.T, model StorageModel) (*Handle, *Schema) {
	schema := NewSchema([]*Column{
		NewColumn("id", types.Integer, 4),
		NewColumn("name", types.Varchar, 16),
	})
	hdr := NewHeader(schema, model)
	dm := disk.NewMemDiskManager()
	bpm := buffer.NewBufferPoolManager(8, buffer.NewLRUReplacer(), dm)
	return NewHandle(1, hdr, schema, bpm), schema
}

func TestTableHandleInsertGetRoundTrip(t *testing.T) {
	th, schema := newTestHandle(t, NAryModel)

	rec := NewRecordFromValues(schema, []types.Value{types.NewInteger(1), types.NewVarchar("a")})
	rid, err := th.InsertRecord(rec)
	testutil.Ok(t, err)

	got, err := th.GetRecord(rid)
	testutil.Ok(t, err)
	testutil.Equals(t, int32(1), got.Value(0).ToInteger())
	testutil.Equals(t, "a", got.Value(1).ToVarchar())
}

func TestTableHandlePAXInsertGetRoundTrip(t *testing.T) {
	th, schema := newTestHandle(t, PAXModel)

	rec := NewRecordFromValues(schema, []types.Value{types.NewInteger(42), types.NewVarchar("pax")})
	rid, err := th.InsertRecord(rec)
	testutil.Ok(t, err)

	got, err := th.GetRecord(rid)
	testutil.Ok(t, err)
	testutil.Equals(t, int32(42), got.Value(0).ToInteger())
	testutil.Equals(t, "pax", got.Value(1).ToVarchar())
}

func TestTableHandleSeqScanOrder(t *testing.T) {
	th, schema := newTestHandle(t, NAryModel)

	for i := int32(1); i <= 3; i++ {
		rec := NewRecordFromValues(schema, []types.Value{types.NewInteger(i), types.NewVarchar("x")})
		_, err := th.InsertRecord(rec)
		testutil.Ok(t, err)
	}

	var ids []int32
	rid, err := th.GetFirstRID()
	testutil.Ok(t, err)
	for rid.IsValid() {
		rec, err := th.GetRecord(rid)
		testutil.Ok(t, err)
		ids = append(ids, rec.Value(0).ToInteger())
		rid, err = th.GetNextRID(rid)
		testutil.Ok(t, err)
	}
	testutil.Equals(t, []int32{1, 2, 3}, ids)
}

func TestTableHandleDeleteRecordMiss(t *testing.T) {
	th, schema := newTestHandle(t, NAryModel)
	rec := NewRecordFromValues(schema, []types.Value{types.NewInteger(1), types.NewVarchar("a")})
	rid, err := th.InsertRecord(rec)
	testutil.Ok(t, err)

	testutil.Ok(t, th.DeleteRecord(rid))
	_, err = th.GetRecord(rid)
	testutil.Assert(t, err != nil, "expected RecordMiss after delete")
}

func TestTableHandleDeleteRelinksFreeList(t *testing.T) {
	// insert enough records to fill one page, then delete one: the page
	// should become reachable from first_free_page again.
	th, schema := newTestHandle(t, NAryModel)
	var rids []types.RID
	for {
		rec := NewRecordFromValues(schema, []types.Value{types.NewInteger(0), types.NewVarchar("x")})
		rid, err := th.InsertRecord(rec)
		testutil.Ok(t, err)
		rids = append(rids, rid)
		if th.Header().FirstFreePage != rid.GetPageId() {
			break // page just filled up and was unlinked
		}
	}
	testutil.Ok(t, th.DeleteRecord(rids[0]))
	testutil.Equals(t, rids[0].GetPageId(), th.Header().FirstFreePage)
}

func TestTableHandleInsertAtExistingFails(t *testing.T) {
	th, schema := newTestHandle(t, NAryModel)
	rec := NewRecordFromValues(schema, []types.Value{types.NewInteger(1), types.NewVarchar("a")})
	rid, err := th.InsertRecord(rec)
	testutil.Ok(t, err)

	err = th.InsertRecordAt(rid, rec)
	testutil.Assert(t, err != nil, "expected RecordExists")
}
