// grounded on the teacher's catalog/catalog.go and table_metadata.go
// (name/oid registry producing a handle on lookup and on create),
// stripped of statistics.go/table_catalog.go's cost-estimation fields —
// query optimization is out of scope (spec §1 Non-goals).

package catalog

import (
	"github.com/nju-wsdb/gowsdb/storage/buffer"
	"github.com/nju-wsdb/gowsdb/storage/disk"
	"github.com/nju-wsdb/gowsdb/storage/table"
	"github.com/nju-wsdb/gowsdb/types"
)

// Info is the metadata a Catalog returns for one table: its schema, the
// handle through which it is read and mutated, and the file id backing
// it. Equivalent to the teacher's TableMetadata.
type Info struct {
	Name   string
	Schema *table.Schema
	Handle *table.Handle
	FileID types.FileID
}

// Catalog is a non-persistent name -> table registry, created fresh at
// process start. It owns no storage of its own; table creation and
// lookup both delegate to the buffer pool / disk manager supplied at
// construction.
type Catalog struct {
	bpm        *buffer.BufferPoolManager
	disk       disk.DiskManager
	tables     map[string]*Info
	nextFileID types.FileID
}

func NewCatalog(bpm *buffer.BufferPoolManager, dm disk.DiskManager) *Catalog {
	return &Catalog{bpm: bpm, disk: dm, tables: make(map[string]*Info)}
}

// CreateTable registers a new table and returns its metadata. The table
// starts with no pages; its first insert allocates page 1 (page 0 is
// reserved for the header, spec §4.4).
func (c *Catalog) CreateTable(name string, schema *table.Schema, model table.StorageModel) *Info {
	fid := c.nextFileID
	c.nextFileID++

	hdr := table.NewHeader(schema, model)
	handle := table.NewHandle(fid, hdr, schema, c.bpm)
	info := &Info{Name: name, Schema: schema, Handle: handle, FileID: fid}
	c.tables[name] = info
	return info
}

// GetTable looks up a table by name, or returns nil if none exists.
func (c *Catalog) GetTable(name string) *Info {
	return c.tables[name]
}

// DropTable evicts every resident page of the table and removes it from
// the registry. The underlying file is not removed from disk.
func (c *Catalog) DropTable(name string) bool {
	info, ok := c.tables[name]
	if !ok {
		return false
	}
	ok = c.bpm.DeleteAllPages(info.FileID)
	delete(c.tables, name)
	return ok
}
