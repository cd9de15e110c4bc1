// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir
//
// generalized from the teacher's single page_id header to spec §3's two
// header fields (page_id, next_free_page_id) threading the table's
// free-page list directly through the page, and from the teacher's fixed
// 4096-byte PageSize constant to common.PageSize so every package shares
// one definition.

package page

import (
	"encoding/binary"

	"github.com/nju-wsdb/gowsdb/common"
	"github.com/nju-wsdb/gowsdb/types"
)

// PageHeaderSize is the fixed number of bytes at the front of Data
// reserved for the header fields below; a page handle's body starts here.
const PageHeaderSize = 8

// Page is one resident 4KiB block plus the bookkeeping the buffer pool
// needs to manage it. Header fields (page id, next free page id) live in
// the first PageHeaderSize bytes of Data so they travel with the page to
// disk; pinCount and isDirty are purely in-memory.
type Page struct {
	fileID       types.FileID
	id           types.PageID
	nextFreePage types.PageID
	pinCount     int
	isDirty      bool
	data         *[common.PageSize]byte
}

func New(id types.PageID) *Page {
	return &Page{fileID: types.InvalidFileID, id: id, nextFreePage: types.InvalidPageID, data: &[common.PageSize]byte{}}
}

func (p *Page) IncPinCount() { p.pinCount++ }

func (p *Page) DecPinCount() {
	if p.pinCount > 0 {
		p.pinCount--
	}
}

func (p *Page) PinCount() int { return p.pinCount }

func (p *Page) ID() types.PageID { return p.id }

func (p *Page) SetID(id types.PageID) { p.id = id }

// FileID is the back-reference to the file this page's frame is currently
// holding a copy of (spec §3's frame identity (fid,pid)).
func (p *Page) FileID() types.FileID { return p.fileID }

func (p *Page) SetFileID(fid types.FileID) { p.fileID = fid }

// Data returns the full fixed-size buffer, header bytes included. Page
// handles slice past PageHeaderSize themselves.
func (p *Page) Data() *[common.PageSize]byte { return p.data }

func (p *Page) SetIsDirty(isDirty bool) { p.isDirty = isDirty }

func (p *Page) IsDirty() bool { return p.isDirty }

func (p *Page) NextFreePageID() types.PageID { return p.nextFreePage }

func (p *Page) SetNextFreePageID(id types.PageID) { p.nextFreePage = id }

// SyncHeader writes id and next_free_page_id into the first
// PageHeaderSize bytes of Data, so they survive the round trip to disk.
// The buffer pool calls this immediately before every WritePage.
func (p *Page) SyncHeader() {
	binary.LittleEndian.PutUint32(p.data[0:4], uint32(p.id))
	binary.LittleEndian.PutUint32(p.data[4:8], uint32(p.nextFreePage))
}

// LoadHeader is SyncHeader's inverse: it restores id and
// next_free_page_id from Data, called after every ReadPage on a cache
// miss (FetchPage's Reset clears both to placeholder values first).
func (p *Page) LoadHeader() {
	p.id = types.PageID(binary.LittleEndian.Uint32(p.data[0:4]))
	p.nextFreePage = types.PageID(binary.LittleEndian.Uint32(p.data[4:8]))
}

// Reset clears a frame's identity and body before it is reused for a
// different page, per spec §4.2's "reset the frame" step of FetchPage.
func (p *Page) Reset(id types.PageID) {
	p.id = id
	p.fileID = types.InvalidFileID
	p.nextFreePage = types.InvalidPageID
	p.pinCount = 0
	p.isDirty = false
	*p.data = [common.PageSize]byte{}
}
