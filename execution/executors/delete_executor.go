// grounded on the teacher's delete_executor.go idiom (walks a child,
// asks the table handle to remove each RID it sees) and on spec
// §4.5.5's closing sentence: Delete follows Update's one-shot DML
// pattern, counting "deleted" rows.

package executors

import (
	"github.com/nju-wsdb/gowsdb/storage/table"
	"github.com/nju-wsdb/gowsdb/types"
)

// DeleteExecutor drives child to completion on the first Next, deleting
// the record at each child row's RID and reporting the count deleted
// (spec §4.5.5).
type DeleteExecutor struct {
	child     Executor
	handle    *table.Handle
	outSchema *table.Schema
	rec       *table.Record
	finished  bool
}

func NewDeleteExecutor(child Executor, handle *table.Handle) *DeleteExecutor {
	return &DeleteExecutor{child: child, handle: handle, outSchema: outSchemaInt("deleted")}
}

// Init is a no-op: this executor ignores its caller's Init and instead
// calls Init on its own child from within the first Next (spec §4.5.5).
func (e *DeleteExecutor) Init() {}

func (e *DeleteExecutor) GetRecord() *table.Record { return e.rec }

func (e *DeleteExecutor) Next() {
	if e.rec != nil {
		e.rec = nil
		e.finished = true
		return
	}
	if e.finished {
		return
	}

	var count int32
	e.child.Init()
	for !e.child.IsEnd() {
		rid := e.child.GetRecord().RID()
		if err := e.handle.DeleteRecord(rid); err != nil {
			panic(err)
		}
		count++
		e.child.Next()
	}
	e.rec = table.NewRecordFromValues(e.outSchema, []types.Value{types.NewInteger(count)})
}

func (e *DeleteExecutor) IsEnd() bool { return e.finished }

func (e *DeleteExecutor) GetOutSchema() *table.Schema { return e.outSchema }
