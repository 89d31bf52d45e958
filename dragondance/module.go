package dragondance

import "fmt"

// Module is a named executable image occupying the half-open address range
// [Base, End). Modules are immutable values.
type Module struct {
	name string
	base uint64
	end  uint64
}

// NewModule returns a module covering [base, end). It panics when base is not
// below end, or when the range is wider than a 32-bit entry offset allows.
func NewModule(name string, base, end uint64) Module {
	if base >= end {
		panic(fmt.Errorf("module %q [%#x, %#x): %w", name, base, end, ErrEmptyRange))
	}
	if end-base > MaxModuleSize {
		panic(fmt.Errorf("module %q is %#x bytes: %w", name, end-base, ErrModuleTooLarge))
	}
	return Module{name: name, base: base, end: end}
}

// Name returns the label written to the module table.
func (m Module) Name() string { return m.name }

// Base returns the first address of the module.
func (m Module) Base() uint64 { return m.base }

// End returns the address just past the module.
func (m Module) End() uint64 { return m.end }

// Size returns End - Base.
func (m Module) Size() uint32 { return uint32(m.end - m.base) }

// Contains reports whether pc falls within [Base, End).
func (m Module) Contains(pc uint64) bool {
	return m.base <= pc && pc < m.end
}

// offsetOf returns pc relative to the module base. pc must be contained.
func (m Module) offsetOf(pc uint64) uint32 {
	return uint32(pc - m.base)
}

func (m Module) String() string {
	return fmt.Sprintf("%s [%#x, %#x)", m.name, m.base, m.end)
}
