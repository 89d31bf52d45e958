package dragondance

import (
	"fmt"
	"io"

	"github.com/joshuapare/ddcov/internal/format"
	"github.com/joshuapare/ddcov/internal/writer"
)

// Write renders the trace to w in the Pin Helper format using the default
// options. Counts reflect the trace at the time of the call.
func (t *Trace) Write(w io.Writer) error {
	return t.WriteWith(w, DefaultWriteOptions())
}

// WriteWith renders the trace to w. Module names are encoded before anything
// is written, so a name error leaves w untouched. Errors from w are returned
// as soon as they occur; w may then hold a partial trace.
func (t *Trace) WriteWith(w io.Writer, opts WriteOptions) error {
	names, err := t.encodeNames(opts)
	if err != nil {
		return err
	}

	// header and module table
	out := format.AppendHeader(nil, len(t.entries), len(t.modules))
	for i, m := range t.modules {
		out = format.AppendModuleLine(out, i+1, m.base, m.end, names[i])
	}
	out = format.AppendEntryTableMarker(out)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// entry table (binary)
	batch := opts.RecordBatch
	if batch < 1 {
		batch = 1
	}
	if n := len(t.entries); n < batch {
		batch = n
	}
	out = make([]byte, 0, batch*format.EntrySize)
	for i, e := range t.entries {
		out = format.AppendEntry(out, e.Offset, e.Size, e.Module)
		if len(out) < cap(out) && i != len(t.entries)-1 {
			continue
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("write entry table: %w", err)
		}
		out = out[:0]
	}
	return nil
}

func (t *Trace) encodeNames(opts WriteOptions) ([][]byte, error) {
	names := make([][]byte, len(t.modules))
	for i, m := range t.modules {
		if opts.NameEncoding == nil {
			names[i] = []byte(m.name)
			continue
		}
		b, err := opts.NameEncoding.NewEncoder().Bytes([]byte(m.name))
		if err != nil {
			return nil, fmt.Errorf("module %d %q: %w: %v", i+1, m.name, ErrNameEncoding, err)
		}
		names[i] = b
	}
	return names, nil
}

// Save writes the trace to path, creating or truncating the file. Creation
// and write errors are returned; a failed write may leave a truncated file.
func (t *Trace) Save(path string) error {
	return t.SaveWith(path, DefaultWriteOptions())
}

// SaveWith is Save with explicit write options.
func (t *Trace) SaveWith(path string, opts WriteOptions) error {
	fw := &writer.FileWriter{Path: path}
	return fw.Create(func(w io.Writer) error {
		return t.WriteWith(w, opts)
	})
}

// SaveAtomic writes the trace to a temp file beside path and renames it into
// place, so path never holds a partial trace.
func (t *Trace) SaveAtomic(path string, opts WriteOptions) error {
	fw := &writer.FileWriter{Path: path, Atomic: true}
	return fw.Create(func(w io.Writer) error {
		return t.WriteWith(w, opts)
	})
}
