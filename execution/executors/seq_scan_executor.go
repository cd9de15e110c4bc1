// grounded on the teacher's seq_scan_executor.go for the leaf-executor
// wiring idiom (holds the table handle, not a plan tree) and on
// original_source/src/execution/executor_seqscan.cpp for the
// GetFirstRID/GetNextRID traversal (spec §4.5.1).

package executors

import (
	"github.com/nju-wsdb/gowsdb/errs"
	"github.com/nju-wsdb/gowsdb/storage/table"
	"github.com/nju-wsdb/gowsdb/types"
)

// SeqScanExecutor produces a table's records in (page_id, slot_id)
// order. Leaf of the executor tree.
type SeqScanExecutor struct {
	handle *table.Handle
	cur    types.RID
	rec    *table.Record
}

func NewSeqScanExecutor(handle *table.Handle) *SeqScanExecutor {
	return &SeqScanExecutor{handle: handle}
}

func (e *SeqScanExecutor) Init() {
	rid, err := e.handle.GetFirstRID()
	if err != nil {
		errs.Fatal("seq scan: " + err.Error())
	}
	e.cur = rid
	e.load()
}

func (e *SeqScanExecutor) load() {
	if !e.cur.IsValid() {
		e.rec = nil
		return
	}
	rec, err := e.handle.GetRecord(e.cur)
	if err != nil {
		errs.Fatal("seq scan: " + err.Error())
	}
	e.rec = rec
}

func (e *SeqScanExecutor) GetRecord() *table.Record { return e.rec }

func (e *SeqScanExecutor) Next() {
	rid, err := e.handle.GetNextRID(e.cur)
	if err != nil {
		errs.Fatal("seq scan: " + err.Error())
	}
	e.cur = rid
	e.load()
}

func (e *SeqScanExecutor) IsEnd() bool { return !e.cur.IsValid() }

func (e *SeqScanExecutor) GetOutSchema() *table.Schema { return e.handle.Schema() }
