package wire

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"unicode/utf8"
)

// Reader decodes values from a byte slice. The first error sticks and every later read
// returns it.
type Reader struct {
	data []byte
	pos  int
	err  error
}

// NewReader creates a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Error returns the first error that occurred during reading, if any.
func (r *Reader) Error() error {
	return r.err
}

// BytesRead returns the number of bytes consumed so far.
func (r *Reader) BytesRead() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Finish fails with ErrTrailingBytes if anything is left unread.
func (r *Reader) Finish() error {
	if r.err != nil {
		return r.err
	}

	if r.Remaining() != 0 {
		r.recordError(ErrTrailingBytes)
	}

	return r.err
}

func (r *Reader) recordError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

func (r *Reader) next(n int) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}

	if n > r.Remaining() {
		r.recordError(errors.Join(ErrBufferTooSmall, io.ErrUnexpectedEOF))
		return nil, r.err
	}

	p := r.data[r.pos : r.pos+n]
	r.pos += n

	return p, nil
}

func (r *Reader) ReadU8() (uint8, error) {
	p, err := r.next(1)
	if err != nil {
		return 0, err
	}

	return p[0], nil
}

func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

func (r *Reader) ReadU16() (uint16, error) {
	p, err := r.next(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(p), nil
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadU32() (uint32, error) {
	p, err := r.next(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(p), nil
}

func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *Reader) ReadU64() (uint64, error) {
	p, err := r.next(8)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(p), nil
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	return math.Float32frombits(v), err
}

func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	return math.Float64frombits(v), err
}

// ReadBool accepts only 0 and 1.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}

	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		r.recordError(ErrInvalidBool)
		return false, r.err
	}
}

// ReadLength reads a count or byte-length prefix and rejects negative values.
func (r *Reader) ReadLength() (int, error) {
	v, err := r.ReadI32()
	if err != nil {
		return 0, err
	}

	if v < 0 {
		r.recordError(ErrNegativeLength)
		return 0, r.err
	}

	return int(v), nil
}

func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadLength()
	if err != nil {
		return "", err
	}

	p, err := r.next(n)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(p) {
		r.recordError(ErrInvalidUTF8)
		return "", r.err
	}

	return string(p), nil
}

// ReadPresence reads the tag in front of an Optional value.
func (r *Reader) ReadPresence() (bool, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return false, err
	}

	switch tag {
	case TagAbsent:
		return false, nil
	case TagPresent:
		return true, nil
	default:
		r.recordError(ErrInvalidTag)
		return false, r.err
	}
}
