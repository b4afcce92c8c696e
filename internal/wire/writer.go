package wire

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// Writer encodes values into the buffer format. The first error sticks: later writes
// are no-ops and Error reports it.
type Writer struct {
	w            io.Writer
	err          error
	bytesWritten int
}

// NewWriter creates a Writer on top of w, usually a *bytes.Buffer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Bytes returns the written bytes if the underlying writer is a *bytes.Buffer and no
// error occurred.
func (w *Writer) Bytes() []byte {
	if w.err != nil {
		return nil
	}

	if bb, ok := w.w.(*bytes.Buffer); ok {
		return bb.Bytes()
	}

	return nil
}

// Error returns the first error that occurred during writing, if any.
func (w *Writer) Error() error {
	return w.err
}

// BytesWritten returns the number of bytes successfully written so far.
func (w *Writer) BytesWritten() int {
	return w.bytesWritten
}

func (w *Writer) recordError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}

	n, err := w.w.Write(p)
	w.bytesWritten += n
	w.recordError(err)
}

func (w *Writer) WriteU8(v uint8) {
	w.write([]byte{v})
}

func (w *Writer) WriteI8(v int8) {
	w.write([]byte{byte(v)})
}

func (w *Writer) WriteU16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) WriteI16(v int16) {
	w.WriteU16(uint16(v))
}

func (w *Writer) WriteU32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) WriteI32(v int32) {
	w.WriteU32(uint32(v))
}

func (w *Writer) WriteU64(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) WriteI64(v int64) {
	w.WriteU64(uint64(v))
}

func (w *Writer) WriteF32(v float32) {
	w.WriteU32(math.Float32bits(v))
}

func (w *Writer) WriteF64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

// WriteBool writes 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

// WriteLength writes a count or byte-length prefix.
func (w *Writer) WriteLength(n int) {
	if n < 0 {
		w.recordError(ErrNegativeLength)
		return
	}

	if n > MaxLength {
		w.recordError(ErrTooLarge)
		return
	}

	w.WriteI32(int32(n))
}

// WriteString writes the UTF-8 byte length followed by the bytes.
func (w *Writer) WriteString(v string) {
	if w.err != nil {
		return
	}

	if !utf8.ValidString(v) {
		w.recordError(ErrInvalidUTF8)
		return
	}

	w.WriteLength(len(v))

	if len(v) > 0 {
		w.write([]byte(v))
	}
}

// WritePresence writes the tag in front of an Optional value.
func (w *Writer) WritePresence(present bool) {
	if present {
		w.WriteU8(TagPresent)
	} else {
		w.WriteU8(TagAbsent)
	}
}
