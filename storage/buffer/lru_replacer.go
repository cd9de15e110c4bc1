// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir
//
// adapted from the teacher's circularList/ClockReplacer pair
// (storage/buffer/circular_list.go, clock_replacer.go): de-circularized
// into a plain doubly-linked list ordered oldest-touched-first, and
// generalized from the clock algorithm to the classic LRU contract of
// spec §4.1.1 (Victim always scans from head for the first evictable
// entry, rather than sweeping a reference bit).

package buffer

import (
	"github.com/nju-wsdb/gowsdb/common"
	"github.com/nju-wsdb/gowsdb/types"
)

type lruNode struct {
	frame     types.FrameID
	evictable bool
	prev, next *lruNode
}

// LRUReplacer implements Replacer with the classic least-recently-used
// policy: a doubly-linked list plus a hash index from frame id to list
// position, per spec §4.1.1.
type LRUReplacer struct {
	mu    common.Mutex
	head  *lruNode // oldest-touched
	tail  *lruNode // most-recently-touched
	index map[types.FrameID]*lruNode
	size  int
}

func NewLRUReplacer() *LRUReplacer {
	return &LRUReplacer{index: make(map[types.FrameID]*lruNode)}
}

func (r *LRUReplacer) pushTail(n *lruNode) {
	n.prev, n.next = nil, nil
	if r.tail == nil {
		r.head, r.tail = n, n
		return
	}
	n.prev = r.tail
	r.tail.next = n
	r.tail = n
}

func (r *LRUReplacer) unlink(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		r.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		r.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

func (r *LRUReplacer) moveToTail(n *lruNode) {
	if r.tail == n {
		return
	}
	r.unlink(n)
	r.pushTail(n)
}

// Victim scans from head picking the first evictable entry.
func (r *LRUReplacer) Victim() (types.FrameID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for n := r.head; n != nil; n = n.next {
		if n.evictable {
			r.unlink(n)
			delete(r.index, n.frame)
			r.size--
			common.Trace("lru victim", "frame", n.frame)
			return n.frame, true
		}
	}
	return types.InvalidFrameID, false
}

// Pin moves a known frame to the tail with evictable=false; an unknown
// frame is appended at the tail, not-evictable.
func (r *LRUReplacer) Pin(id types.FrameID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.index[id]; ok {
		if n.evictable {
			r.size--
		}
		n.evictable = false
		r.moveToTail(n)
		return
	}

	n := &lruNode{frame: id, evictable: false}
	r.index[id] = n
	r.pushTail(n)
}

// Unpin flips a known frame's flag to evictable (idempotent if already
// evictable, and does not reposition it); an unknown frame is appended at
// the tail with evictable=true.
func (r *LRUReplacer) Unpin(id types.FrameID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.index[id]; ok {
		if !n.evictable {
			n.evictable = true
			r.size++
		}
		return
	}

	n := &lruNode{frame: id, evictable: true}
	r.index[id] = n
	r.pushTail(n)
	r.size++
}

func (r *LRUReplacer) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}
