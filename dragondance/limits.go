package dragondance

import "github.com/joshuapare/ddcov/internal/format"

// Limits imposed by the entry record layout. NewModule, NewTrace and Add
// panic when they are exceeded.
const (
	// MaxModuleSize is the widest module range a 32-bit entry offset can address.
	MaxModuleSize = format.MaxModuleSize

	// MaxEntrySize is the largest block length a 16-bit size field can hold.
	MaxEntrySize = format.MaxEntrySize

	// MaxModules is the most modules a 16-bit 1-based index can reference.
	MaxModules = format.MaxModules
)
