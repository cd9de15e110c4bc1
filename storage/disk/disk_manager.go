package disk

import (
	"github.com/nju-wsdb/gowsdb/types"
)

// DiskManager is the external block-addressable byte store this core
// consumes (spec §6). It maps a (file_id, page_id) pair to a raw
// page-sized byte buffer; page id allocation and the free-list live one
// layer up, in the table handle (spec §4.4) — the disk manager itself
// never allocates.
type DiskManager interface {
	ReadPage(fid types.FileID, pid types.PageID, dst []byte) error
	WritePage(fid types.FileID, pid types.PageID, src []byte) error
	GetFileName(fid types.FileID) string
	ShutDown()
}
