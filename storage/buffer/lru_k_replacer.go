// grounded on original_source/storage/buffer/replacer/lru_k_replacer.cpp —
// the teacher has no LRU-K variant at all, so this file follows the C++
// two-phase Victim algorithm directly, rendered in the teacher's Go idiom
// (map + mutex, spec §4.1.2). The "backward K-distance" tie-break by
// earliest first access (spec §8's testable property) is made explicit
// here, where the literal C++ `distance > max_distance` comparison would
// leave ties to iteration order by accident.

package buffer

import (
	"github.com/golang-collections/collections/queue"
	"github.com/nju-wsdb/gowsdb/common"
	"github.com/nju-wsdb/gowsdb/types"
)

type lruKNode struct {
	firstAccess int64
	history     *queue.Queue // bounded to k most recent access timestamps
	historyLen  int
	evictable   bool
}

func newLRUKNode(k int) *lruKNode {
	return &lruKNode{history: queue.New()}
}

func (n *lruKNode) addHistory(ts int64, k int) {
	if n.historyLen == 0 {
		n.firstAccess = ts
	}
	n.history.Enqueue(ts)
	n.historyLen++
	if n.historyLen > k {
		n.history.Dequeue()
		n.historyLen--
	}
}

// backwardKDistance is curTs minus the k-th most recent access timestamp,
// i.e. the oldest entry still held in the bounded history.
func (n *lruKNode) backwardKDistance(curTs int64) int64 {
	oldest := n.history.Peek().(int64)
	return curTs - oldest
}

// LRUKReplacer implements Replacer with the LRU-K policy of spec §4.1.2.
type LRUKReplacer struct {
	mu    common.Mutex
	k     int
	curTs int64
	nodes map[types.FrameID]*lruKNode
	size  int
}

func NewLRUKReplacer(k int) *LRUKReplacer {
	return &LRUKReplacer{k: k, nodes: make(map[types.FrameID]*lruKNode)}
}

func (r *LRUKReplacer) Victim() (types.FrameID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.size == 0 {
		return types.InvalidFrameID, false
	}

	// Pass 1: among evictable frames with fewer than k accesses, pick
	// the one with the earliest first-access timestamp.
	var victim types.FrameID = types.InvalidFrameID
	hasLessThanK := false
	earliest := r.curTs + 1
	for fid, n := range r.nodes {
		if !n.evictable || n.historyLen >= r.k {
			continue
		}
		hasLessThanK = true
		if n.firstAccess < earliest {
			earliest = n.firstAccess
			victim = fid
		}
	}

	// Pass 2: otherwise pick the evictable frame with the maximum
	// backward k-distance, ties broken by earliest first access.
	if !hasLessThanK {
		var maxDist int64 = -1
		var maxFirst int64
		for fid, n := range r.nodes {
			if !n.evictable || n.historyLen < r.k {
				continue
			}
			dist := n.backwardKDistance(r.curTs)
			if dist > maxDist || (dist == maxDist && n.firstAccess < maxFirst) {
				maxDist = dist
				maxFirst = n.firstAccess
				victim = fid
			}
		}
	}

	if victim == types.InvalidFrameID {
		return types.InvalidFrameID, false
	}
	delete(r.nodes, victim)
	r.size--
	return victim, true
}

// Pin records a new access timestamp and clears the evictable flag. A
// frame unknown to the replacer is implicitly created.
func (r *LRUKReplacer) Pin(id types.FrameID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.curTs++
	n, ok := r.nodes[id]
	if !ok {
		n = newLRUKNode(r.k)
		r.nodes[id] = n
	}
	n.addHistory(r.curTs, r.k)
	if n.evictable {
		n.evictable = false
		r.size--
	}
}

// Unpin marks a frame evictable. A frame unknown to the replacer is
// tracked from now on, with an empty access history.
func (r *LRUKReplacer) Unpin(id types.FrameID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[id]
	if !ok {
		n = newLRUKNode(r.k)
		r.nodes[id] = n
	}
	if !n.evictable {
		n.evictable = true
		r.size++
	}
}

func (r *LRUKReplacer) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}
