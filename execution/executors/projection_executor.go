// grounded on the teacher's projection_executor.go (projects() helper
// walking the output schema's columns by name) and
// original_source/src/execution/executor_projection.cpp.

package executors

import "github.com/nju-wsdb/gowsdb/storage/table"

// ProjectionExecutor narrows each child record to outSchema by copying
// the named fields. Preserves child order.
type ProjectionExecutor struct {
	child     Executor
	outSchema *table.Schema
}

func NewProjectionExecutor(child Executor, outSchema *table.Schema) *ProjectionExecutor {
	return &ProjectionExecutor{child: child, outSchema: outSchema}
}

func (e *ProjectionExecutor) Init() { e.child.Init() }

func (e *ProjectionExecutor) GetRecord() *table.Record {
	if e.child.IsEnd() {
		return nil
	}
	rec := e.child.GetRecord()
	if rec == nil {
		return nil
	}
	return table.NewRecordProjection(e.outSchema, rec)
}

func (e *ProjectionExecutor) Next() { e.child.Next() }

func (e *ProjectionExecutor) IsEnd() bool {
	return e.child.IsEnd() || e.child.GetRecord() == nil
}

func (e *ProjectionExecutor) GetOutSchema() *table.Schema { return e.outSchema }
