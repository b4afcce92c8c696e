package wire

import "errors"

var (
	ErrBufferTooSmall      = errors.New("wire: buffer too small")
	ErrInvalidTag          = errors.New("wire: invalid presence tag")
	ErrInvalidBool         = errors.New("wire: invalid boolean byte")
	ErrInvalidUTF8         = errors.New("wire: invalid utf8 string")
	ErrInvalidDiscriminant = errors.New("wire: enum discriminant out of range")
	ErrNegativeLength      = errors.New("wire: negative length prefix")
	ErrTooLarge            = errors.New("wire: length does not fit the prefix")
	ErrTrailingBytes       = errors.New("wire: junk data left in buffer after reading")
	ErrDuplicateKey        = errors.New("wire: duplicate map key")
	ErrTypeMismatch        = errors.New("wire: value does not match type")
	ErrUnknownDecl         = errors.New("wire: undeclared name")
	ErrUnsupported         = errors.New("wire: type has no buffer encoding")
)
