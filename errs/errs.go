// Package errs collects the sentinel error kinds the core signals to its
// callers. Propagation policy: executors never catch these, they bubble to
// the query driver; the buffer pool returns false for benign non-residency
// and raises only ErrNoFreeFrame.
package errs

import "errors"

var (
	// ErrNoFreeFrame is raised by FetchPage when the pool is fully pinned.
	ErrNoFreeFrame = errors.New("gowsdb: no free frame available in buffer pool")
	// ErrRecordMiss is raised when a RID addresses an empty slot.
	ErrRecordMiss = errors.New("gowsdb: record miss, slot is empty")
	// ErrRecordExists is raised inserting at a RID whose slot is occupied.
	ErrRecordExists = errors.New("gowsdb: record already exists at RID")
	// ErrPageMiss is raised for an operation against InvalidPageID.
	ErrPageMiss = errors.New("gowsdb: invalid page id")
)

// Fatal panics on an unreachable case (unknown storage model, unknown
// replacer name). Per spec §7 these crash the process rather than
// returning an error value.
func Fatal(msg string) {
	panic("gowsdb: fatal: " + msg)
}
