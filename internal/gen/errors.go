package gen

import (
	"errors"
	"fmt"

	"ffi-bindgen/iface"
)

// Op names a generator operation.
type Op string

const (
	OpCoerce    Op = "coerce"
	OpLower     Op = "lower"
	OpLift      Op = "lift"
	OpWriteSize Op = "write_size"
	OpWrite     Op = "write"
	OpRead      Op = "read"
)

// ErrUnsupported matches every *UnsupportedError via errors.Is.
var ErrUnsupported = errors.New("gen: unsupported operation")

// UnsupportedError reports an operation that is not implemented for a type, such as
// lowering an error or lifting an object.
type UnsupportedError struct {
	Op   Op
	Type iface.Type
}

func (e *UnsupportedError) Error() string {
	name, err := iface.CanonicalName(e.Type)
	if err != nil {
		name = fmt.Sprintf("%T", e.Type)
	}

	return fmt.Sprintf("gen: %s is not supported for %s", e.Op, name)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func unsupported(op Op, t iface.Type) error {
	return &UnsupportedError{Op: op, Type: t}
}
