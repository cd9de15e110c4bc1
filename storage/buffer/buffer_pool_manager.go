// grounded on the teacher's (since-removed) storage/buffer/buffer_pool_manager.go
// for the free-list/replacer fallback shape of page acquisition, and on
// original_source/src/storage/buffer/buffer_pool_manager.cpp for the
// exact operation set of spec §4.2 (FlushAllPages/DeleteAllPages have no
// teacher analogue). The page table is keyed by (file id, page id) via
// notEpsilon/go-pair, since the teacher is single-file and spec §6 is not.

package buffer

import (
	mapset "github.com/deckarep/golang-set/v2"
	pair "github.com/notEpsilon/go-pair"

	"github.com/nju-wsdb/gowsdb/common"
	"github.com/nju-wsdb/gowsdb/errs"
	"github.com/nju-wsdb/gowsdb/storage/disk"
	"github.com/nju-wsdb/gowsdb/storage/page"
	"github.com/nju-wsdb/gowsdb/types"
)

type pageKey = pair.Pair[types.FileID, types.PageID]

// BufferPoolManager is a fixed array of N frames fronting a disk manager,
// with pin/unpin accounting and pluggable eviction (spec §4.2). All
// public operations serialize on one mutex.
type BufferPoolManager struct {
	mu       common.Mutex
	frames   []*page.Page
	pageTbl  map[pageKey]types.FrameID
	freeList []types.FrameID
	replacer Replacer
	disk     disk.DiskManager
}

// NewDefaultBufferPoolManager builds a pool of common.DefaultBufferPoolSize
// frames backed by the named replacer kind, for callers that don't need
// to tune either (spec §10.1's ambient configuration constants).
func NewDefaultBufferPoolManager(kind common.ReplacerKind, dm disk.DiskManager) *BufferPoolManager {
	return NewBufferPoolManager(common.DefaultBufferPoolSize, NewReplacer(kind), dm)
}

func NewBufferPoolManager(poolSize int, replacer Replacer, dm disk.DiskManager) *BufferPoolManager {
	frames := make([]*page.Page, poolSize)
	freeList := make([]types.FrameID, poolSize)
	for i := 0; i < poolSize; i++ {
		frames[i] = page.New(types.InvalidPageID)
		freeList[i] = types.FrameID(i)
	}
	return &BufferPoolManager{
		frames:   frames,
		pageTbl:  make(map[pageKey]types.FrameID),
		freeList: freeList,
		replacer: replacer,
		disk:     dm,
	}
}

// getFrame obtains a free frame, popping the free list first and falling
// back to the replacer's victim. It does not pin or install a mapping.
func (b *BufferPoolManager) getFrame() (types.FrameID, error) {
	if n := len(b.freeList); n > 0 {
		fid := b.freeList[n-1]
		b.freeList = b.freeList[:n-1]
		return fid, nil
	}
	victim, ok := b.replacer.Victim()
	if !ok {
		return types.InvalidFrameID, errs.ErrNoFreeFrame
	}
	vp := b.frames[victim]
	oldKey := pageKey{First: vp.FileID(), Second: vp.ID()}
	common.Trace("bpm evict", "frame", victim, "fid", oldKey.First, "pid", oldKey.Second)
	b.flushLocked(oldKey)
	delete(b.pageTbl, oldKey)
	return victim, nil
}

func (b *BufferPoolManager) flushLocked(key pageKey) bool {
	fid, ok := b.pageTbl[key]
	if !ok {
		return false
	}
	p := b.frames[fid]
	if p.IsDirty() {
		p.SyncHeader()
		b.disk.WritePage(key.First, p.ID(), p.Data()[:])
		p.SetIsDirty(false)
	}
	return true
}

// FetchPage returns the page (fid,pid), fetching it from disk on miss and
// evicting per the replacer if the pool is full. The returned page always
// has pin_count >= 1.
func (b *BufferPoolManager) FetchPage(fid types.FileID, pid types.PageID) (*page.Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := pageKey{First: fid, Second: pid}
	if frameID, ok := b.pageTbl[key]; ok {
		p := b.frames[frameID]
		p.IncPinCount()
		b.replacer.Pin(frameID)
		return p, nil
	}

	frameID, err := b.getFrame()
	if err != nil {
		return nil, err
	}

	p := b.frames[frameID]
	p.Reset(pid)
	p.SetFileID(fid)
	if err := b.disk.ReadPage(fid, pid, p.Data()[:]); err != nil {
		return nil, err
	}
	p.LoadHeader()
	// a page never written before reads back as zeros, header included;
	// the frame's identity is the requested pid either way.
	p.SetID(pid)
	p.IncPinCount()
	b.replacer.Pin(frameID)
	b.pageTbl[key] = frameID
	return p, nil
}

// NewPage allocates a fresh frame for (fid,pid) without reading it from
// disk, for the table handle's page-allocation path (spec §4.4). The page
// is returned pinned and zeroed. If (fid,pid) is already resident, that
// frame is pinned and returned as is, without zeroing.
func (b *BufferPoolManager) NewPage(fid types.FileID, pid types.PageID) (*page.Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := pageKey{First: fid, Second: pid}
	if frameID, ok := b.pageTbl[key]; ok {
		p := b.frames[frameID]
		p.IncPinCount()
		b.replacer.Pin(frameID)
		return p, nil
	}

	frameID, err := b.getFrame()
	if err != nil {
		return nil, err
	}
	p := b.frames[frameID]
	p.Reset(pid)
	p.SetFileID(fid)
	p.IncPinCount()
	b.replacer.Pin(frameID)
	b.pageTbl[key] = frameID
	return p, nil
}

// UnpinPage decrements the pin count of (fid,pid) and ORs isDirty into
// the frame's dirty flag (never clearing it here). Returns false if the
// page is not resident or the frame is not in use.
func (b *BufferPoolManager) UnpinPage(fid types.FileID, pid types.PageID, isDirty bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := pageKey{First: fid, Second: pid}
	frameID, ok := b.pageTbl[key]
	if !ok {
		return false
	}
	p := b.frames[frameID]
	if p.PinCount() == 0 {
		return false
	}
	if isDirty {
		p.SetIsDirty(true)
	}
	p.DecPinCount()
	if p.PinCount() == 0 {
		b.replacer.Unpin(frameID)
	}
	return true
}

// FlushPage writes (fid,pid) back to disk if dirty and clears the dirty
// flag. Returns false if not resident.
func (b *BufferPoolManager) FlushPage(fid types.FileID, pid types.PageID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushLocked(pageKey{First: fid, Second: pid})
}

// FlushAllPages flushes every dirty resident page belonging to fid.
func (b *BufferPoolManager) FlushAllPages(fid types.FileID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys := mapset.NewThreadUnsafeSet[pageKey]()
	for k := range b.pageTbl {
		if k.First == fid {
			keys.Add(k)
		}
	}
	ok := true
	for _, k := range keys.ToSlice() {
		if !b.flushLocked(k) {
			ok = false
		}
	}
	return ok
}

// DeletePage removes (fid,pid) from the pool. Returns true if it was not
// resident (nothing to do), false without change if it is in use.
func (b *BufferPoolManager) DeletePage(fid types.FileID, pid types.PageID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.deleteLocked(pageKey{First: fid, Second: pid})
}

func (b *BufferPoolManager) deleteLocked(key pageKey) bool {
	frameID, ok := b.pageTbl[key]
	if !ok {
		return true
	}
	p := b.frames[frameID]
	if p.PinCount() > 0 {
		return false
	}
	if p.IsDirty() {
		p.SyncHeader()
		b.disk.WritePage(key.First, p.ID(), p.Data()[:])
	}
	delete(b.pageTbl, key)
	p.Reset(types.InvalidPageID)
	b.freeList = append(b.freeList, frameID)
	b.replacer.Pin(frameID) // stop tracking it as a victim candidate
	return true
}

// DeleteAllPages best-effort deletes every resident page of fid. Returns
// false if any in-use page blocked deletion; others still succeed.
func (b *BufferPoolManager) DeleteAllPages(fid types.FileID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys := mapset.NewThreadUnsafeSet[pageKey]()
	for k := range b.pageTbl {
		if k.First == fid {
			keys.Add(k)
		}
	}
	ok := true
	for _, k := range keys.ToSlice() {
		if !b.deleteLocked(k) {
			ok = false
		}
	}
	return ok
}
