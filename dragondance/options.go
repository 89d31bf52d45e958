package dragondance

import "golang.org/x/text/encoding"

// WriteOptions controls how a trace is rendered.
type WriteOptions struct {
	// NameEncoding transcodes module names from UTF-8 before they are written.
	// A nil encoding writes names byte-for-byte.
	// Default: nil
	NameEncoding encoding.Encoding

	// RecordBatch is the number of entry records encoded per write to the
	// sink. Values below 1 write one record at a time.
	// Default: 512
	RecordBatch int
}

// DefaultRecordBatch is the RecordBatch used by DefaultWriteOptions.
const DefaultRecordBatch = 512

// DefaultWriteOptions returns the options used by Write and Save.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		NameEncoding: nil,
		RecordBatch:  DefaultRecordBatch,
	}
}
