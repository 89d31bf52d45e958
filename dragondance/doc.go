// Package dragondance records code coverage events and exports them in the
// Dragondance Pin Helper file format.
//
// # Overview
//
// A Trace is built over a fixed set of Modules, the executable images loaded
// in the traced process. Coverage events (a program counter plus the length
// of the block or instruction executed there) are added one at a time and
// resolved to a module when they are added. Writing the trace emits a text
// header, a text module table and a binary entry table.
//
//	modules := []dragondance.Module{
//	    dragondance.NewModule("abcd", 0x1000, 0x2000),
//	    dragondance.NewModule("libc.so", 0x555000, 0x556000),
//	}
//	trace := dragondance.NewTrace(modules)
//
//	trace.Add(0x1204, 3)
//	trace.Add(0x1207, 12)
//
//	if err := trace.Save("trace.dd"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Failure Modes
//
// Invalid module ranges, events outside every module and block lengths that
// do not fit in 16 bits are programming errors and panic. The panic value is
// an error wrapping ErrEmptyRange, ErrModuleTooLarge, ErrNoModule or
// ErrEntryTooLarge. Write and Save return I/O errors.
//
// # Byte Order
//
// Entry records are written in the byte order of the machine running the
// program, not a fixed one. Readers of the format expect this.
//
// # Concurrency
//
// A Trace has no internal locking. Concurrent Write calls on a trace nobody
// is adding to are safe; anything else must be serialized by the caller.
//
// Module ranges are not checked for overlap. When ranges overlap, an address
// resolves to the module registered first.
package dragondance
