// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package types

// RID is the record identifier for a given page id and slot number.
// InvalidRID denotes end-of-sequence (spec §3).
type RID struct {
	pageID PageID
	slotID uint32
}

var InvalidRID = RID{pageID: InvalidPageID, slotID: ^uint32(0)}

func NewRID(pageID PageID, slotID uint32) RID {
	return RID{pageID, slotID}
}

func (r RID) GetPageId() PageID  { return r.pageID }
func (r RID) GetSlot() uint32    { return r.slotID }
func (r RID) IsValid() bool      { return r.pageID.IsValid() }
func (r RID) Equals(o RID) bool  { return r.pageID == o.pageID && r.slotID == o.slotID }
