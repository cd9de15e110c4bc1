package buffer

import (
	"github.com/nju-wsdb/gowsdb/common"
	"github.com/nju-wsdb/gowsdb/errs"
	"github.com/nju-wsdb/gowsdb/types"
)

// Replacer picks the victim frame when the buffer pool needs to evict.
// All four operations are atomic under a single mutex, per spec §4.1 —
// each implementation below owns exactly one.
type Replacer interface {
	// Victim picks one evictable frame, removes it from tracking, and
	// returns its id. The second return is false if no frame is
	// evictable.
	Victim() (types.FrameID, bool)
	// Pin marks a frame not-evictable.
	Pin(types.FrameID)
	// Unpin marks a frame evictable; it is tracked from now on even if
	// previously unknown to the replacer.
	Unpin(types.FrameID)
	// Size returns the count of currently evictable frames.
	Size() int
}

// NewReplacer builds the named replacer with the common package's
// defaults (spec §7: unknown kind is a Fatal, unreachable case).
func NewReplacer(kind common.ReplacerKind) Replacer {
	switch kind {
	case common.LRUReplacerKind:
		return NewLRUReplacer()
	case common.LRUKReplacerKind:
		return NewLRUKReplacer(common.DefaultLRUK)
	default:
		errs.Fatal("unknown replacer kind: " + string(kind))
		return nil
	}
}
