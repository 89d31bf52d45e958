// Package buf contains helpers for native-order encoding routines.
package buf

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// Native is the byte order of the machine producing the trace. Entry records
// are stored in this order rather than a fixed one; readers of the format
// expect records exactly as the producing host laid them out.
var Native binary.ByteOrder = nativeOrder()

func nativeOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// PutU16NE writes v into b[0:2] in native byte order. Panics when b is too short.
func PutU16NE(b []byte, v uint16) {
	Native.PutUint16(b, v)
}

// PutU32NE writes v into b[0:4] in native byte order. Panics when b is too short.
func PutU32NE(b []byte, v uint32) {
	Native.PutUint32(b, v)
}
