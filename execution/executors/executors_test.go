// scenarios mirror spec §8's numbered executor scenarios, built against
// an in-memory table handle the same way storage/table's own tests are.

package executors

import (
	"testing"

	"github.com/nju-wsdb/gowsdb/internal/testutil"
	"github.com/nju-wsdb/gowsdb/storage/buffer"
	"github.com/nju-wsdb/gowsdb/storage/disk"
	"github.com/nju-wsdb/gowsdb/storage/table"
	"github.com/nju-wsdb/gowsdb/types"
)

func newExecTestHandle(t *testing.T) (*table.Handle, *table.Schema) {
	schema := table.NewSchema([]*table.Column{
		table.NewColumn("id", types.Integer, 4),
		table.NewColumn("name", types.Varchar, 16),
	})
	hdr := table.NewHeader(schema, table.NAryModel)
	dm := disk.NewMemDiskManager()
	bpm := buffer.NewBufferPoolManager(8, buffer.NewLRUReplacer(), dm)
	return table.NewHandle(1, hdr, schema, bpm), schema
}

func seedRows(t *testing.T, th *table.Handle, schema *table.Schema, rows [][2]interface{}) {
	for _, r := range rows {
		rec := table.NewRecordFromValues(schema, []types.Value{
			types.NewInteger(int32(r[0].(int))),
			types.NewVarchar(r[1].(string)),
		})
		_, err := th.InsertRecord(rec)
		testutil.Ok(t, err)
	}
}

func drain(e Executor) []*table.Record {
	var out []*table.Record
	e.Init()
	for !e.IsEnd() {
		if rec := e.GetRecord(); rec != nil {
			out = append(out, rec)
		}
		e.Next()
	}
	return out
}

// scenario 1: seq scan of three rows.
func TestSeqScanThreeRows(t *testing.T) {
	th, schema := newExecTestHandle(t)
	seedRows(t, th, schema, [][2]interface{}{{1, "a"}, {2, "b"}, {3, "c"}})

	recs := drain(NewSeqScanExecutor(th))
	testutil.Equals(t, 3, len(recs))
	for i, rec := range recs {
		testutil.Equals(t, int32(i+1), rec.Value(0).ToInteger())
	}
}

// scenario 2: filter even ids.
func TestFilterEvenIDs(t *testing.T) {
	th, schema := newExecTestHandle(t)
	seedRows(t, th, schema, [][2]interface{}{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}, {5, "e"}})

	scan := NewSeqScanExecutor(th)
	filter := NewFilterExecutor(scan, func(r *table.Record) bool {
		return r.Value(0).ToInteger()%2 == 0
	})
	recs := drain(filter)

	testutil.Equals(t, 2, len(recs))
	testutil.Equals(t, int32(2), recs[0].Value(0).ToInteger())
	testutil.Equals(t, int32(4), recs[1].Value(0).ToInteger())
}

// scenario 3: projection narrows schema.
func TestProjectionNarrowsSchema(t *testing.T) {
	th, schema := newExecTestHandle(t)
	seedRows(t, th, schema, [][2]interface{}{{1, "a"}, {2, "b"}})

	outSchema := table.NewSchema([]*table.Column{table.NewColumn("name", types.Varchar, 16)})
	proj := NewProjectionExecutor(NewSeqScanExecutor(th), outSchema)
	recs := drain(proj)

	testutil.Equals(t, 2, len(recs))
	testutil.Equals(t, 1, proj.GetOutSchema().ColumnCount())
	testutil.Equals(t, "a", recs[0].Value(0).ToVarchar())
	testutil.Equals(t, "b", recs[1].Value(0).ToVarchar())
}

// scenario 4: sort descending by id.
func TestSortDescendingByID(t *testing.T) {
	th, schema := newExecTestHandle(t)
	seedRows(t, th, schema, [][2]interface{}{{3, "c"}, {1, "a"}, {2, "b"}})

	keySchema := table.NewSchema([]*table.Column{table.NewColumn("id", types.Integer, 4)})
	sortExec := NewSortExecutor(NewSeqScanExecutor(th), keySchema, true)
	recs := drain(sortExec)

	testutil.Equals(t, 3, len(recs))
	testutil.Equals(t, []int32{3, 2, 1}, []int32{
		recs[0].Value(0).ToInteger(),
		recs[1].Value(0).ToInteger(),
		recs[2].Value(0).ToInteger(),
	})
}

// scenario 5: update count.
func TestUpdateCount(t *testing.T) {
	th, schema := newExecTestHandle(t)
	seedRows(t, th, schema, [][2]interface{}{{1, "10"}, {2, "20"}, {3, "30"}})

	filter := NewFilterExecutor(NewSeqScanExecutor(th), func(r *table.Record) bool {
		return r.Value(0).ToInteger() >= 2
	})
	update := NewUpdateExecutor(filter, th, []FieldUpdate{{Field: "name", Value: types.NewVarchar("0")}})

	engine := &ExecutionEngine{}
	recs, err := engine.Execute(update)
	testutil.Ok(t, err)
	testutil.Equals(t, 1, len(recs))
	testutil.Equals(t, int32(2), recs[0].Value(0).ToInteger())
	testutil.Equals(t, "updated", update.GetOutSchema().Column(0).Name())

	after := drain(NewSeqScanExecutor(th))
	testutil.Equals(t, 3, len(after))
	testutil.Equals(t, "10", after[0].Value(1).ToVarchar())
	testutil.Equals(t, "0", after[1].Value(1).ToVarchar())
	testutil.Equals(t, "0", after[2].Value(1).ToVarchar())
}

// spec §4.5.5: a field named by updates but absent from the schema is
// silently skipped, not an error. SPEC_FULL.md §12 makes the skip
// observable via SkippedCount rather than truly silent.
func TestUpdateSkipsUnknownField(t *testing.T) {
	th, schema := newExecTestHandle(t)
	seedRows(t, th, schema, [][2]interface{}{{1, "10"}})

	update := NewUpdateExecutor(NewSeqScanExecutor(th), th, []FieldUpdate{
		{Field: "name", Value: types.NewVarchar("x")},
		{Field: "nonexistent", Value: types.NewInteger(0)},
	})

	engine := &ExecutionEngine{}
	recs, err := engine.Execute(update)
	testutil.Ok(t, err)
	testutil.Equals(t, 1, len(recs))
	testutil.Equals(t, int32(1), recs[0].Value(0).ToInteger())
	testutil.Equals(t, int32(1), update.SkippedCount())
}

func TestInsertExecutorCount(t *testing.T) {
	th, schema := newExecTestHandle(t)

	src := &literalExecutor{
		schema: schema,
		rows: [][]types.Value{
			{types.NewInteger(1), types.NewVarchar("a")},
			{types.NewInteger(2), types.NewVarchar("b")},
		},
	}
	insert := NewInsertExecutor(src, th)

	engine := &ExecutionEngine{}
	recs, err := engine.Execute(insert)
	testutil.Ok(t, err)
	testutil.Equals(t, 1, len(recs))
	testutil.Equals(t, int32(2), recs[0].Value(0).ToInteger())

	after := drain(NewSeqScanExecutor(th))
	testutil.Equals(t, 2, len(after))
}

func TestDeleteExecutorCount(t *testing.T) {
	th, schema := newExecTestHandle(t)
	seedRows(t, th, schema, [][2]interface{}{{1, "a"}, {2, "b"}, {3, "c"}})

	filter := NewFilterExecutor(NewSeqScanExecutor(th), func(r *table.Record) bool {
		return r.Value(0).ToInteger() != 2
	})
	del := NewDeleteExecutor(filter, th)

	engine := &ExecutionEngine{}
	recs, err := engine.Execute(del)
	testutil.Ok(t, err)
	testutil.Equals(t, 1, len(recs))
	testutil.Equals(t, int32(2), recs[0].Value(0).ToInteger())

	after := drain(NewSeqScanExecutor(th))
	testutil.Equals(t, 1, len(after))
	testutil.Equals(t, int32(2), after[0].Value(0).ToInteger())
}

// literalExecutor is a minimal in-memory leaf used only to feed
// InsertExecutor a fixed row set in these tests.
type literalExecutor struct {
	schema *table.Schema
	rows   [][]types.Value
	idx    int
}

func (e *literalExecutor) Init()                      { e.idx = 0 }
func (e *literalExecutor) Next()                      { e.idx++ }
func (e *literalExecutor) IsEnd() bool                { return e.idx >= len(e.rows) }
func (e *literalExecutor) GetOutSchema() *table.Schema { return e.schema }
func (e *literalExecutor) GetRecord() *table.Record {
	if e.IsEnd() {
		return nil
	}
	return table.NewRecordFromValues(e.schema, e.rows[e.idx])
}
