// grounded on the teacher's execution_engine.go (a thin driver looping
// an executor to completion) generalized to the separated Init/GetRecord/
// Next/IsEnd protocol of spec §4.5. Storage errors inside an executor
// bubble up as a panic (spec §7: "executors do not catch these; they
// bubble to the query driver") and are recovered here into a returned
// error, since the Executor interface carries no error return.
package executors

import "github.com/nju-wsdb/gowsdb/storage/table"

// ExecutionEngine runs an executor tree to completion and collects its
// output records.
type ExecutionEngine struct{}

// Execute drives root with the canonical {GetRecord; Next}* loop: Init,
// then while !IsEnd, read the current record and advance. A DML operator
// produces exactly one record this way, since its first Next both does
// the work and makes that record available (spec §4.5.5); SeqScan and
// friends behave as any pull-based iterator.
func (e *ExecutionEngine) Execute(root Executor) (recs []*table.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			if asErr, ok := r.(error); ok {
				err = asErr
			} else {
				panic(r)
			}
		}
	}()

	root.Init()
	for !root.IsEnd() {
		if rec := root.GetRecord(); rec != nil {
			recs = append(recs, rec)
		}
		root.Next()
	}
	return recs, nil
}
