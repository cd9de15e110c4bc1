// this code is from https://github.com/pzhzqt/goostub
// there is license and copyright notice in licenses/goostub dir

package common

const (
	// invalid page id
	InvalidPageID = -1
	// invalid frame id
	InvalidFrameID = -1
	// the header page id of a table file
	HeaderPageID = 0
	// size of a data page in byte
	PageSize = 4096
	// default number of frames in a buffer pool when none is configured
	DefaultBufferPoolSize = 32
	// default K for LRUKReplacer when none is configured
	DefaultLRUK = 2
)

// ReplacerKind names the eviction policy a buffer pool is constructed with.
type ReplacerKind string

const (
	LRUReplacerKind  ReplacerKind = "LRUReplacer"
	LRUKReplacerKind ReplacerKind = "LRUKReplacer"
)
