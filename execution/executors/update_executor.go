// grounded on the teacher's update_executor.go idiom (holds a child, does
// one pass over it) stripped of index/transaction bookkeeping (out of
// scope, spec §1), and on original_source/src/execution/executor_update.cpp
// for the one-shot-DML shape of spec §4.5.5: ignores external Init, does
// all work on the first Next, then reports IsEnd.
//
// Driving convention: the generic {GetRecord; Next}* loop still applies.
// The first Next performs the whole mutation and produces the single
// "updated" count record; the second Next retires it and flips IsEnd.

package executors

import (
	"github.com/nju-wsdb/gowsdb/storage/table"
	"github.com/nju-wsdb/gowsdb/types"
)

// FieldUpdate names one field to overwrite and its new value, per spec
// §4.5.5's {field_descriptor, value} pairs.
type FieldUpdate struct {
	Field string
	Value types.Value
}

// outSchemaInt builds the single-field {name: int} out-schema shared by
// every DML operator (spec §4.5.5: "a single int field named ...").
func outSchemaInt(name string) *table.Schema {
	return table.NewSchema([]*table.Column{table.NewColumn(name, types.Integer, 4)})
}

// UpdateExecutor drives child to completion on the first Next, applying
// updates to each record in place and reporting the count touched (spec
// §4.5.5). A field named by updates but absent from the child's schema
// is silently skipped.
type UpdateExecutor struct {
	child     Executor
	handle    *table.Handle
	updates   []FieldUpdate
	outSchema *table.Schema
	rec       *table.Record
	finished  bool
	skipped   int32
}

func NewUpdateExecutor(child Executor, handle *table.Handle, updates []FieldUpdate) *UpdateExecutor {
	return &UpdateExecutor{child: child, handle: handle, updates: updates, outSchema: outSchemaInt("updated")}
}

// Init is a no-op: this executor ignores its caller's Init and instead
// calls Init on its own child from within the first Next (spec §4.5.5).
func (e *UpdateExecutor) Init() {}

func (e *UpdateExecutor) GetRecord() *table.Record { return e.rec }

func (e *UpdateExecutor) Next() {
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
		old := e.child.GetRecord()
		schema := old.Schema()
		oldRid := old.RID()

		values := make([]types.Value, schema.ColumnCount())
		for i := range values {
			values[i] = old.Value(i)
		}
		for _, u := range e.updates {
			idx := schema.ColumnIndex(u.Field)
			if idx < 0 {
				e.skipped++
				continue
			}
			values[idx] = u.Value
		}
		newRec := table.NewRecordFromValues(schema, values)
		newRec.SetRID(oldRid)

		if err := e.handle.UpdateRecord(oldRid, newRec); err != nil {
			panic(err)
		}
		count++
		e.child.Next()
	}
	e.rec = table.NewRecordFromValues(e.outSchema, []types.Value{types.NewInteger(count)})
}

func (e *UpdateExecutor) IsEnd() bool { return e.finished }

func (e *UpdateExecutor) GetOutSchema() *table.Schema { return e.outSchema }

// SkippedCount reports how many {field, value} updates named a field not
// present in the child's schema, per spec §4.5.5's "silently skipped"
// clause made observable (SPEC_FULL.md §12 open-question decision).
func (e *UpdateExecutor) SkippedCount() int32 { return e.skipped }
