package buffer

import (
	"testing"

	"github.com/nju-wsdb/gowsdb/internal/testutil"
	"github.com/nju-wsdb/gowsdb/types"
)

func TestLRUReplacerLaw(t *testing.T) {
	// spec §8: after Pin(1); Pin(2); Unpin(1); Unpin(2); Victim -> 1; Victim -> 2
	r := NewLRUReplacer()
	r.Pin(1)
	r.Pin(2)
	r.Unpin(1)
	r.Unpin(2)

	f, ok := r.Victim()
	testutil.Ok(t, nil)
	testutil.Assert(t, ok, "expected a victim")
	testutil.Equals(t, types.FrameID(1), f)

	f, ok = r.Victim()
	testutil.Assert(t, ok, "expected a second victim")
	testutil.Equals(t, types.FrameID(2), f)

	_, ok = r.Victim()
	testutil.Assert(t, !ok, "replacer should be empty")
}

func TestLRUReplacerUnpinIdempotent(t *testing.T) {
	r := NewLRUReplacer()
	r.Unpin(1)
	r.Unpin(1)
	testutil.Equals(t, 1, r.Size())
}

func TestLRUReplacerScansFromHead(t *testing.T) {
	r := NewLRUReplacer()
	r.Unpin(1)
	r.Unpin(2)
	r.Unpin(3)
	r.Pin(2) // remove 2 from evictable set, move to tail

	f, ok := r.Victim()
	testutil.Assert(t, ok, "expected a victim")
	testutil.Equals(t, types.FrameID(1), f)

	f, ok = r.Victim()
	testutil.Assert(t, ok, "expected a victim")
	testutil.Equals(t, types.FrameID(3), f)
}

func TestLRUKReplacerFewerThanKWins(t *testing.T) {
	// spec §8: K=2, access trace a a b b c a b, unpin all three, Victim
	// picks c (fewer than K accesses, earliest first access among those).
	r := NewLRUKReplacer(2)
	access := func(fid types.FrameID) {
		r.Pin(fid)
		r.Unpin(fid)
	}
	access(1) // a
	access(1) // a
	access(2) // b
	access(2) // b
	access(3) // c
	access(1) // a
	access(2) // b

	f, ok := r.Victim()
	testutil.Assert(t, ok, "expected a victim")
	testutil.Equals(t, types.FrameID(3), f)
}

func TestLRUKReplacerBackwardKDistance(t *testing.T) {
	r := NewLRUKReplacer(2)
	access := func(fid types.FrameID) {
		r.Pin(fid)
		r.Unpin(fid)
	}
	// both frames reach k=2 accesses; frame 1's most-recent-but-one
	// access is older, so it has a larger backward k-distance.
	access(1)
	access(2)
	access(1)
	access(2)

	f, ok := r.Victim()
	testutil.Assert(t, ok, "expected a victim")
	testutil.Equals(t, types.FrameID(1), f)
}

func TestLRUKReplacerPinRemovesFromCandidates(t *testing.T) {
	r := NewLRUKReplacer(2)
	r.Pin(1)
	r.Unpin(1)
	testutil.Equals(t, 1, r.Size())
	r.Pin(1)
	testutil.Equals(t, 0, r.Size())
}
