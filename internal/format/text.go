package format

import "fmt"

// AppendHeader appends the signature and counts lines followed by the module
// table marker.
func AppendHeader(dst []byte, entries, modules int) []byte {
	dst = append(dst, Signature...)
	dst = append(dst, LineTerminator)
	dst = fmt.Appendf(dst, CountsLine, entries, modules)
	dst = append(dst, LineTerminator)
	dst = append(dst, ModuleTableMarker...)
	return append(dst, LineTerminator)
}

// AppendModuleLine appends one module table row. index is 1-based and name
// is written byte-for-byte.
func AppendModuleLine(dst []byte, index int, base, end uint64, name []byte) []byte {
	dst = fmt.Appendf(dst, ModuleLine, index, base, end, name)
	return append(dst, LineTerminator)
}

// AppendEntryTableMarker appends the line that precedes the binary records.
func AppendEntryTableMarker(dst []byte) []byte {
	dst = append(dst, EntryTableMarker...)
	return append(dst, LineTerminator)
}
