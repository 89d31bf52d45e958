package dragondance

import "fmt"

// Entry is one recorded coverage event.
type Entry struct {
	// Offset is the event address relative to the module base.
	Offset uint32
	// Size is the length in bytes of the block or instruction.
	Size uint16
	// Module is the 1-based index of the module in the trace's module table.
	// Zero is never produced.
	Module uint16
}

// Trace is a fixed module table plus an append-only log of coverage entries.
// The zero value is an empty trace with no modules.
type Trace struct {
	modules []Module
	entries []Entry
}

// NewTrace returns an empty trace over a copy of modules. It panics when
// there are more modules than a 16-bit index can reference.
func NewTrace(modules []Module) *Trace {
	if len(modules) > MaxModules {
		panic(fmt.Errorf("%d modules: %w", len(modules), ErrTooManyModules))
	}
	return &Trace{
		modules: append([]Module(nil), modules...),
	}
}

// Modules returns a copy of the module table in registration order.
func (t *Trace) Modules() []Module {
	return append([]Module(nil), t.modules...)
}

// Entries returns a copy of the entry log in the order events were added.
func (t *Trace) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of recorded entries.
func (t *Trace) Len() int { return len(t.entries) }

// find returns the position of the first module containing pc, or -1.
func (t *Trace) find(pc uint64) int {
	for i, m := range t.modules {
		if m.Contains(pc) {
			return i
		}
	}
	return -1
}

// ModuleContaining returns the first registered module containing pc.
func (t *Trace) ModuleContaining(pc uint64) (Module, bool) {
	i := t.find(pc)
	if i < 0 {
		return Module{}, false
	}
	return t.modules[i], true
}

// ModuleIndex returns the 1-based module table index for pc, as it would be
// recorded by Add.
func (t *Trace) ModuleIndex(pc uint64) (uint16, bool) {
	i := t.find(pc)
	if i < 0 {
		return 0, false
	}
	return uint16(i + 1), true
}

// Add records that size bytes were executed starting at pc.
//
// size is the basic block length, or the instruction length when tracing
// single instructions. Add panics when no module contains pc or when size
// does not fit in 16 bits; in both cases the trace is left unchanged.
func (t *Trace) Add(pc uint64, size int) {
	if size < 0 || size > MaxEntrySize {
		panic(fmt.Errorf("event at %#x has size %d: %w", pc, size, ErrEntryTooLarge))
	}

	i := t.find(pc)
	if i < 0 {
		panic(fmt.Errorf("event at %#x: %w", pc, ErrNoModule))
	}

	t.entries = append(t.entries, Entry{
		Offset: t.modules[i].offsetOf(pc),
		Size:   uint16(size),
		Module: uint16(i + 1),
	})
}
