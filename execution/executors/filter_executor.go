// grounded on the teacher's filter_executor.go idiom (predicate evaluated
// against each child record) and original_source/src/execution/executor_filter.cpp
// for the prime-then-advance Init/Next semantics spec §4.5.2 requires.

package executors

import "github.com/nju-wsdb/gowsdb/storage/table"

// Predicate is a plain Go function over a record — this core has no SQL
// expression tree to evaluate (spec §1: the frontend is out of scope).
type Predicate func(*table.Record) bool

// FilterExecutor yields only the child's records matching pred. Out
// schema is the child's.
type FilterExecutor struct {
	child Executor
	pred  Predicate
}

func NewFilterExecutor(child Executor, pred Predicate) *FilterExecutor {
	return &FilterExecutor{child: child, pred: pred}
}

func (e *FilterExecutor) Init() {
	e.child.Init()
	e.advance()
}

// advance steps the child until the predicate holds or it ends.
func (e *FilterExecutor) advance() {
	for !e.child.IsEnd() && !e.pred(e.child.GetRecord()) {
		e.child.Next()
	}
}

func (e *FilterExecutor) GetRecord() *table.Record {
	if e.child.IsEnd() {
		return nil
	}
	return e.child.GetRecord()
}

func (e *FilterExecutor) Next() {
	e.child.Next()
	e.advance()
}

func (e *FilterExecutor) IsEnd() bool { return e.child.IsEnd() }

func (e *FilterExecutor) GetOutSchema() *table.Schema { return e.child.GetOutSchema() }
