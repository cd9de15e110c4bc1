package catalog

import (
	"testing"

	"github.com/nju-wsdb/gowsdb/internal/testutil"
	"github.com/nju-wsdb/gowsdb/storage/buffer"
	"github.com/nju-wsdb/gowsdb/storage/disk"
	"github.com/nju-wsdb/gowsdb/storage/table"
	"github.com/nju-wsdb/gowsdb/types"
)

func newTestCatalog() *Catalog {
	dm := disk.NewMemDiskManager()
	bpm := buffer.NewBufferPoolManager(8, buffer.NewLRUReplacer(), dm)
	return NewCatalog(bpm, dm)
}

func testSchema() *table.Schema {
	return table.NewSchema([]*table.Column{
		table.NewColumn("id", types.Integer, 4),
		table.NewColumn("name", types.Varchar, 16),
	})
}

func TestCatalogCreateAndGetTable(t *testing.T) {
	c := newTestCatalog()
	schema := testSchema()

	info := c.CreateTable("users", schema, table.NAryModel)
	testutil.Assert(t, info != nil, "expected CreateTable to return metadata")
	testutil.Equals(t, "users", info.Name)
	testutil.Equals(t, types.FileID(0), info.FileID)

	got := c.GetTable("users")
	testutil.Equals(t, info, got)
}

func TestCatalogGetTableMissing(t *testing.T) {
	c := newTestCatalog()
	testutil.Assert(t, c.GetTable("nope") == nil, "expected nil for unknown table")
}

func TestCatalogDistinctFileIDs(t *testing.T) {
	c := newTestCatalog()
	schema := testSchema()

	a := c.CreateTable("a", schema, table.NAryModel)
	b := c.CreateTable("b", schema, table.NAryModel)
	testutil.Assert(t, a.FileID != b.FileID, "expected distinct file ids per table")
}

func TestCatalogCreatedTableIsUsable(t *testing.T) {
	c := newTestCatalog()
	schema := testSchema()
	info := c.CreateTable("users", schema, table.NAryModel)

	rec := table.NewRecordFromValues(schema, []types.Value{types.NewInteger(1), types.NewVarchar("a")})
	rid, err := info.Handle.InsertRecord(rec)
	testutil.Ok(t, err)

	got, err := info.Handle.GetRecord(rid)
	testutil.Ok(t, err)
	testutil.Equals(t, int32(1), got.Value(0).ToInteger())
}

func TestCatalogDropTable(t *testing.T) {
	c := newTestCatalog()
	schema := testSchema()
	info := c.CreateTable("users", schema, table.NAryModel)

	rec := table.NewRecordFromValues(schema, []types.Value{types.NewInteger(1), types.NewVarchar("a")})
	_, err := info.Handle.InsertRecord(rec)
	testutil.Ok(t, err)

	testutil.Assert(t, c.DropTable("users"), "expected DropTable to succeed")
	testutil.Assert(t, c.GetTable("users") == nil, "expected table gone from registry after drop")
}

func TestCatalogDropTableMissing(t *testing.T) {
	c := newTestCatalog()
	testutil.Assert(t, !c.DropTable("nope"), "expected DropTable to report false for unknown table")
}
