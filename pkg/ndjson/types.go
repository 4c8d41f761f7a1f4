package ndjson

import (
	"io"
	"strings"
)

// DefaultSegmentSize is the read buffer size. Each Read from the underlying
// stream is treated as one segment, whatever its boundaries.
const DefaultSegmentSize = 4096

// Chunk is one successfully parsed object from the stream.
type Chunk struct {
	// Response is nil when the object had no "response" field.
	Response *string `json:"response"`
	Done     bool    `json:"done"`
	Error    string  `json:"error"`
}

// Text returns the chunk's response text, or "".
func (c Chunk) Text() string {
	if c.Response == nil {
		return ""
	}
	return *c.Response
}

// Decoder reads newline-delimited JSON objects whose boundaries need not
// line up with the transport's read boundaries.
type Decoder struct {
	r       io.Reader
	buf     []byte
	pending string
	queue   []Chunk
	text    strings.Builder
	err     error
}
