package format

import "github.com/joshuapare/ddcov/internal/buf"

// PutEntry encodes one entry record into b[0:EntrySize]. The instruction
// count field is always written as zero. It panics when b is shorter than
// EntrySize, like the encoding/binary Put methods.
func PutEntry(b []byte, offset uint32, size, module uint16) {
	_ = b[EntrySize-1] // bounds check before any field is written
	buf.PutU32NE(b[EntryOffsetOffset:], offset)
	buf.PutU16NE(b[EntrySizeOffset:], size)
	buf.PutU16NE(b[EntryModuleOffset:], module)
	buf.PutU32NE(b[EntryInstCountOffset:], 0)
}

// AppendEntry appends one encoded entry record to dst.
func AppendEntry(dst []byte, offset uint32, size, module uint16) []byte {
	var rec [EntrySize]byte
	PutEntry(rec[:], offset, size, module)
	return append(dst, rec[:]...)
}
