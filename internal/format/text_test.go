package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendHeader(t *testing.T) {
	got := AppendHeader(nil, 2, 1)
	require.Equal(t, "DDPH-PINTOOL\nEntryCount: 2, ModuleCount: 1\nMODULE_TABLE\n", string(got))
}

func TestAppendModuleLine(t *testing.T) {
	tests := []struct {
		name  string
		index int
		base  uint64
		end   uint64
		mod   string
		want  string
	}{
		{"simple", 1, 0x1000, 0x2000, "abcd", "1, 0x1000, 0x2000, abcd\n"},
		{"lower case hex", 2, 0x555000, 0x55ABCD, "libc.so", "2, 0x555000, 0x55abcd, libc.so\n"},
		{"high address", 3, 0x7fff00000000, 0x7fff00001000, "ld.so", "3, 0x7fff00000000, 0x7fff00001000, ld.so\n"},
		{"zero base", 4, 0, 0x10, "boot", "4, 0x0, 0x10, boot\n"},
		{"spaces kept", 5, 0x10, 0x20, "C:\\Program Files\\a.dll", "5, 0x10, 0x20, C:\\Program Files\\a.dll\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendModuleLine(nil, tt.index, tt.base, tt.end, []byte(tt.mod))
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestAppendEntryTableMarker(t *testing.T) {
	got := AppendEntryTableMarker([]byte("x\n"))
	require.Equal(t, "x\nENTRY_TABLE\n", string(got))
}
