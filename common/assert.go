package common

import (
	"github.com/sasha-s/go-deadlock"
)

// Assert panics with msg if condition is false. Used at the boundary of
// invariants this core relies on but does not want to silently violate
// (e.g. an N-ary page handle asked to write a slot whose occupancy bit
// disagrees with the write's update flag).
func Assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// Mutex is a drop-in sync.Mutex replacement that detects lock-order
// inversions in tests and development builds. The buffer pool and the
// replacers each guard their state with exactly one of these, per the
// single-mutex-per-component rule of spec §4.1/§4.2.
type Mutex = deadlock.Mutex
