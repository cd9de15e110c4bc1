// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package disk

import (
	"os"
)

// DiskManagerTest wraps a FileDiskManager rooted at a fresh temp
// directory, removed on ShutDown.
type DiskManagerTest struct {
	dir string
	DiskManager
}

// NewDiskManagerTest returns a DiskManager instance for testing purposes.
func NewDiskManagerTest() DiskManager {
	dir, err := os.MkdirTemp("", "gowsdb-disk-test-")
	if err != nil {
		panic(err)
	}
	return &DiskManagerTest{dir, NewFileDiskManager(dir, "test")}
}

func (d *DiskManagerTest) ShutDown() {
	defer os.RemoveAll(d.dir)
	d.DiskManager.ShutDown()
}
