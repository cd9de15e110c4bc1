// grounded on the teacher's orderby_executor.go (drain-the-child-into-a-
// buffer shape) and original_source/src/execution/executor_sort.cpp for
// the key-schema comparator. spec §9 notes external-merge sort as an
// unrequired extension point; only the in-memory path is implemented.

package executors

import (
	"sort"

	"github.com/nju-wsdb/gowsdb/storage/table"
)

// SortExecutor drains its child into a buffer, sorts it by keySchema,
// and walks the sorted buffer. Ties fall back to the buffer's natural
// (child) order because sort.SliceStable is used.
type SortExecutor struct {
	child     Executor
	keySchema *table.Schema
	desc      bool
	buf       []*table.Record
	idx       int
}

func NewSortExecutor(child Executor, keySchema *table.Schema, desc bool) *SortExecutor {
	return &SortExecutor{child: child, keySchema: keySchema, desc: desc}
}

func (e *SortExecutor) Init() {
	e.child.Init()
	e.buf = e.buf[:0]
	for !e.child.IsEnd() {
		e.buf = append(e.buf, e.child.GetRecord())
		e.child.Next()
	}
	sortRecords(e.buf, e.keySchema, e.desc)
	e.idx = 0
}

func (e *SortExecutor) GetRecord() *table.Record {
	if e.idx >= len(e.buf) {
		return nil
	}
	return e.buf[e.idx]
}

func (e *SortExecutor) Next() { e.idx++ }

func (e *SortExecutor) IsEnd() bool { return e.idx >= len(e.buf) }

func (e *SortExecutor) GetOutSchema() *table.Schema { return e.child.GetOutSchema() }

func sortRecords(recs []*table.Record, keySchema *table.Schema, desc bool) {
	sort.SliceStable(recs, func(i, j int) bool {
		if desc {
			return recs[j].Less(recs[i], keySchema)
		}
		return recs[i].Less(recs[j], keySchema)
	})
}
