// grounded on original_source's separated-method executor protocol
// (distinct from the teacher's combined execution/executors/executor.go
// `Next() (*table.Tuple, bool, error)` shape) — spec §4.5 mandates
// Init/GetRecord/Next/IsEnd/GetOutSchema as independent calls.

package executors

import "github.com/nju-wsdb/gowsdb/storage/table"

// Executor is one node of a pull-based iterator tree (spec §4.5).
//
// Contract: after Init, if !IsEnd, GetRecord yields the first result.
// The sequence {GetRecord; Next}* enumerates all results; the loop
// terminates when IsEnd is true.
type Executor interface {
	// Init prepares to iterate; a fresh Init restarts iteration from
	// scratch.
	Init()
	// GetRecord returns the current record, or nil when IsEnd.
	GetRecord() *table.Record
	// Next advances to the following record.
	Next()
	// IsEnd reports whether iteration is exhausted.
	IsEnd() bool
	// GetOutSchema is the schema of records this executor produces.
	GetOutSchema() *table.Schema
}
