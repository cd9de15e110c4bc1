// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package types

import (
	"bytes"
	"encoding/binary"
)

// PageID is the type of the page identifier, unique within one FileID.
type PageID int32

// InvalidPageID represents an invalid/absent page id.
const InvalidPageID = PageID(-1)

func (id PageID) IsValid() bool { return id != InvalidPageID }

func (id PageID) Serialize() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, id)
	return buf.Bytes()
}

func NewPageIDFromBytes(data []byte) (ret PageID) {
	binary.Read(bytes.NewBuffer(data), binary.LittleEndian, &ret)
	return ret
}

// FileID identifies which backing file/table a page belongs to. The
// teacher repo is single-file; spec §6 keys the disk manager by
// (file_id, page_id), so this type has no teacher analogue.
type FileID int32

const InvalidFileID = FileID(-1)

// FrameID is the type for a buffer pool frame id.
type FrameID int32

const InvalidFrameID = FrameID(-1)
