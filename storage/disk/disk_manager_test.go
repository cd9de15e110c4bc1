package disk

import (
	"testing"

	"github.com/nju-wsdb/gowsdb/common"
	"github.com/nju-wsdb/gowsdb/internal/testutil"
	"github.com/nju-wsdb/gowsdb/types"
)

func TestFileDiskManagerReadWrite(t *testing.T) {
	dm := NewDiskManagerTest()
	defer dm.ShutDown()

	data := make([]byte, common.PageSize)
	buf := make([]byte, common.PageSize)
	copy(data, "A test string.")

	testutil.Ok(t, dm.ReadPage(0, 0, buf)) // tolerate empty read
	testutil.Ok(t, dm.WritePage(0, 0, data))
	testutil.Ok(t, dm.ReadPage(0, 0, buf))
	testutil.Equals(t, data, buf)

	for i := range buf {
		buf[i] = 0
	}
	copy(data, "Another test string.")
	testutil.Ok(t, dm.WritePage(0, 5, data))
	testutil.Ok(t, dm.ReadPage(0, 5, buf))
	testutil.Equals(t, data, buf)
}

func TestFileDiskManagerSeparatesFiles(t *testing.T) {
	dm := NewDiskManagerTest()
	defer dm.ShutDown()

	a := make([]byte, common.PageSize)
	b := make([]byte, common.PageSize)
	copy(a, "fileA")
	copy(b, "fileB")

	testutil.Ok(t, dm.WritePage(types.FileID(1), 0, a))
	testutil.Ok(t, dm.WritePage(types.FileID(2), 0, b))

	buf := make([]byte, common.PageSize)
	testutil.Ok(t, dm.ReadPage(types.FileID(1), 0, buf))
	testutil.Equals(t, a, buf)

	testutil.Ok(t, dm.ReadPage(types.FileID(2), 0, buf))
	testutil.Equals(t, b, buf)
}

func TestMemDiskManagerReadWrite(t *testing.T) {
	dm := NewMemDiskManager()
	defer dm.ShutDown()

	data := make([]byte, common.PageSize)
	buf := make([]byte, common.PageSize)
	copy(data, "in memory")

	testutil.Ok(t, dm.WritePage(0, 3, data))
	testutil.Ok(t, dm.ReadPage(0, 3, buf))
	testutil.Equals(t, data, buf)
}
