package primitive

import "strings"

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// All returns every valid scalar kind in declaration order.
func All() []KindEnum {
	res := make([]KindEnum, 0, KindTotal-1)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		res = append(res, k)
	}

	return res
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// Bits returns the width of the kind on the wire. Booleans travel as a single byte.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only scalar kinds have a meaningful width, but requested for: " + k.String())
	case KindInt8, KindUint8, KindBool:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

// Bytes is Bits in bytes.
func (k KindEnum) Bytes() int {
	return k.Bits() / 8
}

// names accepts both the interface-definition spelling (i32) and the WIT spelling (s32).
var names = map[string]KindEnum{
	"i8":      KindInt8,
	"s8":      KindInt8,
	"i16":     KindInt16,
	"s16":     KindInt16,
	"i32":     KindInt32,
	"s32":     KindInt32,
	"i64":     KindInt64,
	"s64":     KindInt64,
	"u8":      KindUint8,
	"u16":     KindUint16,
	"u32":     KindUint32,
	"u64":     KindUint64,
	"f32":     KindFloat32,
	"float":   KindFloat32,
	"f64":     KindFloat64,
	"double":  KindFloat64,
	"bool":    KindBool,
	"boolean": KindBool,
}

// FromName resolves a scalar type name. It returns 0 for anything that is not a scalar.
func FromName(name string) KindEnum {
	return names[strings.ToLower(strings.TrimSpace(name))]
}
