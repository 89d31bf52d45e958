package dragondance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestTrace() *Trace {
	return NewTrace([]Module{
		NewModule("abcd", 0x1000, 0x2000),
		NewModule("libc.so", 0x555000, 0x556000),
	})
}

func TestAddResolvesModule(t *testing.T) {
	tr := newTestTrace()

	tr.Add(0x1204, 3)
	tr.Add(0x555fff, 1)
	tr.Add(0x1000, 0xFFFF)

	require.Equal(t, 3, tr.Len())
	require.Equal(t, []Entry{
		{Offset: 0x204, Size: 3, Module: 1},
		{Offset: 0xfff, Size: 1, Module: 2},
		{Offset: 0, Size: 0xFFFF, Module: 1},
	}, tr.Entries())
}

func TestAddOutsideModules(t *testing.T) {
	tr := NewTrace([]Module{NewModule("abcd.so", 0x1000, 0x2000)})

	requirePanicsWith(t, ErrNoModule, func() { tr.Add(0xdead, 10) })
	requirePanicsWith(t, ErrNoModule, func() { tr.Add(0x2000, 1) })
	requirePanicsWith(t, ErrNoModule, func() { tr.Add(0xfff, 1) })
	require.Equal(t, 0, tr.Len())
}

func TestAddOversizedEntry(t *testing.T) {
	tr := newTestTrace()
	tr.Add(0x1000, 1)

	requirePanicsWith(t, ErrEntryTooLarge, func() { tr.Add(0x1000, 0x10000) })
	requirePanicsWith(t, ErrEntryTooLarge, func() { tr.Add(0x1000, -1) })
	require.Equal(t, 1, tr.Len())
}

func TestAddWithoutModules(t *testing.T) {
	var tr Trace
	requirePanicsWith(t, ErrNoModule, func() { tr.Add(0, 1) })

	tr2 := NewTrace(nil)
	requirePanicsWith(t, ErrNoModule, func() { tr2.Add(0x1000, 1) })
}

func TestOverlapPrefersFirstRegistered(t *testing.T) {
	tr := NewTrace([]Module{
		NewModule("outer", 0x1000, 0x9000),
		NewModule("inner", 0x2000, 0x3000),
	})

	m, ok := tr.ModuleContaining(0x2500)
	require.True(t, ok)
	require.Equal(t, "outer", m.Name())

	idx, ok := tr.ModuleIndex(0x2500)
	require.True(t, ok)
	require.Equal(t, uint16(1), idx)

	tr.Add(0x2500, 4)
	require.Equal(t, []Entry{{Offset: 0x1500, Size: 4, Module: 1}}, tr.Entries())
}

func TestModuleContainingMiss(t *testing.T) {
	tr := newTestTrace()

	_, ok := tr.ModuleContaining(0xdead)
	require.False(t, ok)

	idx, ok := tr.ModuleIndex(0xdead)
	require.False(t, ok)
	require.Zero(t, idx)
}

func TestNewTraceCopiesModules(t *testing.T) {
	mods := []Module{NewModule("a", 0x1000, 0x2000)}
	tr := NewTrace(mods)
	mods[0] = NewModule("b", 0x5000, 0x6000)

	require.Equal(t, "a", tr.Modules()[0].Name())

	got := tr.Modules()
	got[0] = NewModule("c", 0x7000, 0x8000)
	require.Equal(t, "a", tr.Modules()[0].Name())
}

func TestEntriesReturnsCopy(t *testing.T) {
	tr := newTestTrace()
	tr.Add(0x1204, 3)

	got := tr.Entries()
	got[0].Size = 99
	require.Equal(t, uint16(3), tr.Entries()[0].Size)
}

func TestNewTraceTooManyModules(t *testing.T) {
	mods := make([]Module, MaxModules+1)
	for i := range mods {
		base := uint64(i) * 0x10
		mods[i] = NewModule("m", base, base+0x10)
	}
	requirePanicsWith(t, ErrTooManyModules, func() { NewTrace(mods) })

	tr := NewTrace(mods[:MaxModules])
	last := mods[MaxModules-1]
	tr.Add(last.Base(), 1)
	require.Equal(t, uint16(MaxModules), tr.Entries()[0].Module)
}

func TestLimitsMatchPanicBoundaries(t *testing.T) {
	NewModule("widest", 0, MaxModuleSize)
	requirePanicsWith(t, ErrModuleTooLarge, func() { NewModule("wider", 0, MaxModuleSize+1) })

	tr := newTestTrace()
	tr.Add(0x1000, MaxEntrySize)
	requirePanicsWith(t, ErrEntryTooLarge, func() { tr.Add(0x1000, MaxEntrySize+1) })
	require.Equal(t, 1, tr.Len())
}
