// Package format houses the low-level encoders for the Dragondance Pin Helper
// coverage file. The layout is fixed by the external reader, so every literal
// line, field offset and width below is part of the compatibility contract.
package format

const (
	// Signature is the first line of every trace file.
	Signature = "DDPH-PINTOOL"

	// CountsLine is the second line; entry count first, then module count.
	CountsLine = "EntryCount: %d, ModuleCount: %d"

	// ModuleTableMarker opens the text module table.
	ModuleTableMarker = "MODULE_TABLE"

	// ModuleLine renders one module table row: 1-based index, base, end, name.
	// Addresses use lower-case hex with a 0x prefix.
	ModuleLine = "%d, %#x, %#x, %s"

	// EntryTableMarker opens the binary entry table. Records follow the
	// newline immediately, with no padding.
	EntryTableMarker = "ENTRY_TABLE"

	// LineTerminator ends every text line.
	LineTerminator = '\n'
)

// Entry records are 12 bytes in the producing machine's native byte order.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    Offset of the block relative to its module base
//	 0x04    2    Block (or instruction) length in bytes
//	 0x06    2    1-based module table index
//	 0x08    4    Instruction count, unused by the reader, always zero
const (
	EntrySize = 12

	EntryOffsetOffset    = 0x00
	EntrySizeOffset      = 0x04
	EntryModuleOffset    = 0x06
	EntryInstCountOffset = 0x08
)

const (
	// MaxModuleSize is the widest module range an entry offset can address.
	MaxModuleSize = 0xFFFFFFFF

	// MaxEntrySize is the largest block length an entry can record.
	MaxEntrySize = 0xFFFF

	// MaxModules is the largest module count a 16-bit index can reference.
	MaxModules = 0xFFFF
)
