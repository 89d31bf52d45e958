package dragondance

import "errors"

var (
	// ErrEmptyRange indicates a module whose base is not below its end.
	ErrEmptyRange = errors.New("dragondance: module base must be below end")
	// ErrModuleTooLarge indicates a module wider than a 32-bit offset can address.
	ErrModuleTooLarge = errors.New("dragondance: module size exceeds 32-bit offset range")
	// ErrTooManyModules indicates more modules than a 16-bit index can reference.
	ErrTooManyModules = errors.New("dragondance: too many modules for 16-bit index")
	// ErrNoModule indicates a coverage event outside every registered module.
	ErrNoModule = errors.New("dragondance: no module contains address")
	// ErrEntryTooLarge indicates a block length that does not fit in 16 bits.
	ErrEntryTooLarge = errors.New("dragondance: entry size out of 16-bit range")
	// ErrNameEncoding indicates a module name the configured encoding cannot represent.
	ErrNameEncoding = errors.New("dragondance: module name not encodable")
)
