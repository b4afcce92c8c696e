package iface

import "ffi-bindgen/primitive"

//go:generate go tool stringer -type=FFIType -output=ffitype_string.go

// FFIType is the flat wire-level representation of a value crossing the boundary.
type FFIType int

const (
	_ FFIType = iota // zero doubles as "no value" for function return types

	FFIInt8
	FFIUInt8
	FFIInt16
	FFIUInt16
	FFIInt32
	FFIUInt32
	FFIInt64
	FFIUInt64
	FFIFloat32
	FFIFloat64
	FFIRustBuffer       // length-prefixed byte buffer owned by the native side
	FFIRustError        // out-pointer carrying a native error
	FFIRustString       // native-owned string
	FFIForeignStringRef // borrowed NUL-terminated string owned by the caller

	// FFITypeTotal is a constant that represents the total number of wire types defined
	FFITypeTotal = int(iota)
)

// AllFFITypes returns every valid FFIType.
func AllFFITypes() []FFIType {
	res := make([]FFIType, 0, FFITypeTotal-1)
	for t := FFIType(1); int(t) < FFITypeTotal; t++ {
		res = append(res, t)
	}

	return res
}

// IsValid reports whether t is one of the declared wire types.
func (t FFIType) IsValid() bool {
	return t > 0 && int(t) < FFITypeTotal
}

var primitiveFFI = map[primitive.KindEnum]FFIType{
	primitive.KindInt8:    FFIInt8,
	primitive.KindUint8:   FFIUInt8,
	primitive.KindInt16:   FFIInt16,
	primitive.KindUint16:  FFIUInt16,
	primitive.KindInt32:   FFIInt32,
	primitive.KindUint32:  FFIUInt32,
	primitive.KindInt64:   FFIInt64,
	primitive.KindUint64:  FFIUInt64,
	primitive.KindFloat32: FFIFloat32,
	primitive.KindFloat64: FFIFloat64,
	primitive.KindBool:    FFIInt8,
}

type ffiMapper struct{}

func (ffiMapper) VisitPrimitive(t Primitive) (FFIType, error) {
	ft, ok := primitiveFFI[t.Prim]
	if !ok {
		return 0, &InvalidPrimitiveError{Kind: t.Prim}
	}

	return ft, nil
}

func (ffiMapper) VisitString(String) (FFIType, error)     { return FFIRustString, nil }
func (ffiMapper) VisitEnum(Enum) (FFIType, error)         { return FFIUInt32, nil }
func (ffiMapper) VisitObject(Object) (FFIType, error)     { return FFIUInt64, nil }
func (ffiMapper) VisitError(Error) (FFIType, error)       { return FFIRustError, nil }
func (ffiMapper) VisitRecord(Record) (FFIType, error)     { return FFIRustBuffer, nil }
func (ffiMapper) VisitOptional(Optional) (FFIType, error) { return FFIRustBuffer, nil }
func (ffiMapper) VisitSequence(Sequence) (FFIType, error) { return FFIRustBuffer, nil }
func (ffiMapper) VisitMap(Map) (FFIType, error)           { return FFIRustBuffer, nil }

// FFITypeOf returns the wire representation used for values of t.
func FFITypeOf(t Type) (FFIType, error) {
	return Visit[FFIType](t, ffiMapper{})
}

// InvalidPrimitiveError reports a Primitive whose kind is outside the scalar set.
type InvalidPrimitiveError struct {
	Kind primitive.KindEnum
}

func (e *InvalidPrimitiveError) Error() string {
	return "iface: invalid primitive kind " + e.Kind.String()
}
