package ndjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// NewDecoder returns a Decoder reading segments from r.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderSize(r, DefaultSegmentSize)
}

// NewDecoderSize is NewDecoder with an explicit segment size.
func NewDecoderSize(r io.Reader, size int) *Decoder {
	if size <= 0 {
		size = DefaultSegmentSize
	}
	return &Decoder{r: r, buf: make([]byte, size)}
}

// Next returns the next decoded chunk. It returns io.EOF once the stream is
// exhausted; any other error comes from the underlying reader. A Decoder
// cannot be restarted.
func (d *Decoder) Next() (Chunk, error) {
	for len(d.queue) == 0 {
		if d.err != nil {
			return Chunk{}, d.err
		}

		n, err := d.r.Read(d.buf)
		if n > 0 {
			d.feed(d.buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.err = io.EOF
			} else {
				d.err = fmt.Errorf("ndjson: read stream: %w", err)
			}
		}
	}

	c := d.queue[0]
	d.queue = d.queue[1:]
	return c, nil
}

// Text returns the concatenated response text of every chunk decoded so far.
func (d *Decoder) Text() string {
	return d.text.String()
}

// Pending returns the unparsed fragment carried between candidates. After
// io.EOF a non-empty value is a truncated object that was dropped.
func (d *Decoder) Pending() string {
	return d.pending
}

// feed splits one segment on newlines and tries each candidate, prefixed by
// whatever is pending, as a complete object.
func (d *Decoder) feed(segment []byte) {
	for _, candidate := range strings.Split(string(segment), "\n") {
		if candidate == "" {
			continue
		}

		c, ok := parseObject(d.pending + candidate)
		if !ok {
			d.pending += candidate
			continue
		}

		d.pending = ""
		if c.Response != nil {
			d.text.WriteString(*c.Response)
		}
		d.queue = append(d.queue, c)
	}
}

func parseObject(s string) (Chunk, bool) {
	data := bytes.TrimLeft([]byte(s), " \t\r")
	if len(data) == 0 || data[0] != '{' {
		return Chunk{}, false
	}

	var c Chunk
	if err := json.Unmarshal(data, &c); err != nil {
		return Chunk{}, false
	}
	return c, true
}

// Decode drains r and returns the aggregated response text. A truncated
// trailing object is dropped without error.
func Decode(r io.Reader) (string, error) {
	d := NewDecoder(r)
	for {
		if _, err := d.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return d.Text(), nil
			}
			return d.Text(), err
		}
	}
}
