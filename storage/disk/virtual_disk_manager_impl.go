// adapted from the teacher's VirtualDiskManagerImpl (itself unused by any
// non-test code there), generalized to a per-FileID map of memfile.File
// backings instead of a single implicit file, and stripped of the log
// file / reusable-space-id bookkeeping (page-id allocation is the table
// handle's job in this design, spec §4.4 — the disk manager is purely a
// (file_id,page_id) -> bytes store).

package disk

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dsnet/golib/memfile"
	"github.com/nju-wsdb/gowsdb/common"
	"github.com/nju-wsdb/gowsdb/types"
)

// MemDiskManager is an in-memory DiskManager backed by memfile.File, one
// per FileID. Used by tests (spec §8 scenario 6 needs a "fresh pool
// instance" to observe persisted dirty bytes without touching the
// filesystem) and anywhere a throwaway disk is convenient.
type MemDiskManager struct {
	mu    sync.Mutex
	files map[types.FileID]*memfile.File
	sizes map[types.FileID]int64
}

func NewMemDiskManager() DiskManager {
	return &MemDiskManager{
		files: make(map[types.FileID]*memfile.File),
		sizes: make(map[types.FileID]int64),
	}
}

func (d *MemDiskManager) fileLocked(fid types.FileID) *memfile.File {
	f, ok := d.files[fid]
	if !ok {
		f = memfile.New(make([]byte, 0))
		d.files[fid] = f
	}
	return f
}

func (d *MemDiskManager) WritePage(fid types.FileID, pid types.PageID, pageData []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	f := d.fileLocked(fid)
	offset := int64(pid) * common.PageSize
	if _, err := f.WriteAt(pageData, offset); err != nil {
		return err
	}
	if end := offset + int64(len(pageData)); end > d.sizes[fid] {
		d.sizes[fid] = end
	}
	return nil
}

func (d *MemDiskManager) ReadPage(fid types.FileID, pid types.PageID, pageData []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	offset := int64(pid) * common.PageSize
	if offset+int64(len(pageData)) > d.sizes[fid] {
		for i := range pageData {
			pageData[i] = 0
		}
		return nil
	}

	f := d.fileLocked(fid)
	if _, err := f.ReadAt(pageData, offset); err != nil {
		return errors.New("gowsdb: memdisk read error: " + err.Error())
	}
	return nil
}

func (d *MemDiskManager) GetFileName(fid types.FileID) string {
	return fmt.Sprintf("memfile://%d", fid)
}

func (d *MemDiskManager) ShutDown() {}
