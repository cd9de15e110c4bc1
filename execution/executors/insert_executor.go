// grounded on the teacher's insert_executor.go idiom (asks a table
// handle to insert each incoming row) and on spec §4.5.5's closing
// sentence: Insert follows the same one-shot DML pattern as Update —
// "drive the child, apply the mutation, report count" — counting
// "inserted" rows. The child's records are projected onto the target
// schema by name, the same rule Projection uses (spec §4.5.3), so a
// child narrower than the table is padded with nulls rather than
// rejected.

package executors

import (
	"github.com/nju-wsdb/gowsdb/storage/table"
	"github.com/nju-wsdb/gowsdb/types"
)

// InsertExecutor drives child to completion on the first Next, inserting
// each of its records into handle's table and reporting the count
// inserted (spec §4.5.5).
type InsertExecutor struct {
	child     Executor
	handle    *table.Handle
	outSchema *table.Schema
	rec       *table.Record
	finished  bool
}

func NewInsertExecutor(child Executor, handle *table.Handle) *InsertExecutor {
	return &InsertExecutor{child: child, handle: handle, outSchema: outSchemaInt("inserted")}
}

// Init is a no-op: this executor ignores its caller's Init and instead
// calls Init on its own child from within the first Next (spec §4.5.5).
func (e *InsertExecutor) Init() {}

func (e *InsertExecutor) GetRecord() *table.Record { return e.rec }

func (e *InsertExecutor) Next() {
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
		src := e.child.GetRecord()
		rec := table.NewRecordProjection(e.handle.Schema(), src)
		if _, err := e.handle.InsertRecord(rec); err != nil {
			panic(err)
		}
		count++
		e.child.Next()
	}
	e.rec = table.NewRecordFromValues(e.outSchema, []types.Value{types.NewInteger(count)})
}

func (e *InsertExecutor) IsEnd() bool { return e.finished }

func (e *InsertExecutor) GetOutSchema() *table.Schema { return e.outSchema }
