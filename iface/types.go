package iface

import (
	"errors"
	"fmt"

	"ffi-bindgen/primitive"
)

//go:generate go tool stringer -type=TypeKind -output=kind_string.go

// TypeKind names the variant of a Type.
type TypeKind int

const (
	_ TypeKind = iota // zero is never a valid kind

	TypeKindPrimitive
	TypeKindString
	TypeKindEnum
	TypeKindObject
	TypeKindError
	TypeKindRecord
	TypeKindOptional
	TypeKindSequence
	TypeKindMap

	// TypeKindTotal is a constant that represents the total number of kinds defined
	TypeKindTotal = int(iota)
)

// ErrNilType is returned when a generator is handed a nil Type.
var ErrNilType = errors.New("iface: nil type")

// Type is a closed union describing the shape of a value at the interface boundary.
// Only this package defines variants; values are immutable and comparable, so == is
// structural equality.
type Type interface {
	Kind() TypeKind
	isType()
}

// Primitive is a fixed-width scalar or a boolean.
type Primitive struct {
	Prim primitive.KindEnum
}

// String is UTF-8 text.
type String struct{}

// Enum references a declared enumeration by name.
type Enum struct {
	Name string
}

// Object references an opaque instance owned by the native side.
type Object struct {
	Name string
}

// Error references a declared error type.
type Error struct {
	Name string
}

// Record references a declared record by name.
type Record struct {
	Name string
}

// Optional is Inner or absent.
type Optional struct {
	Inner Type
}

// Sequence is an ordered run of Inner.
type Sequence struct {
	Inner Type
}

// Map is a string-keyed mapping to Inner.
type Map struct {
	Inner Type
}

func (Primitive) Kind() TypeKind { return TypeKindPrimitive }
func (String) Kind() TypeKind    { return TypeKindString }
func (Enum) Kind() TypeKind      { return TypeKindEnum }
func (Object) Kind() TypeKind    { return TypeKindObject }
func (Error) Kind() TypeKind     { return TypeKindError }
func (Record) Kind() TypeKind    { return TypeKindRecord }
func (Optional) Kind() TypeKind  { return TypeKindOptional }
func (Sequence) Kind() TypeKind  { return TypeKindSequence }
func (Map) Kind() TypeKind       { return TypeKindMap }

func (Primitive) isType() {}
func (String) isType()    {}
func (Enum) isType()      {}
func (Object) isType()    {}
func (Error) isType()     {}
func (Record) isType()    {}
func (Optional) isType()  {}
func (Sequence) isType()  {}
func (Map) isType()       {}

var (
	Int8    Type = Primitive{Prim: primitive.KindInt8}
	Int16   Type = Primitive{Prim: primitive.KindInt16}
	Int32   Type = Primitive{Prim: primitive.KindInt32}
	Int64   Type = Primitive{Prim: primitive.KindInt64}
	UInt8   Type = Primitive{Prim: primitive.KindUint8}
	UInt16  Type = Primitive{Prim: primitive.KindUint16}
	UInt32  Type = Primitive{Prim: primitive.KindUint32}
	UInt64  Type = Primitive{Prim: primitive.KindUint64}
	Float32 Type = Primitive{Prim: primitive.KindFloat32}
	Float64 Type = Primitive{Prim: primitive.KindFloat64}
	Boolean Type = Primitive{Prim: primitive.KindBool}
	Text    Type = String{}
)

// IsComposite reports whether values of t travel inside a length-prefixed buffer and
// therefore need per-type helper routines.
func IsComposite(t Type) bool {
	switch t.(type) {
	case Record, Optional, Sequence, Map:
		return true
	default:
		return false
	}
}

// Equal is structural equality.
func Equal(a, b Type) bool {
	return a == b
}

// Visitor has one method per Type variant. Adding a variant to the algebra adds a method
// here, which breaks every implementation until the new case is handled.
type Visitor[R any] interface {
	VisitPrimitive(t Primitive) (R, error)
	VisitString(t String) (R, error)
	VisitEnum(t Enum) (R, error)
	VisitObject(t Object) (R, error)
	VisitError(t Error) (R, error)
	VisitRecord(t Record) (R, error)
	VisitOptional(t Optional) (R, error)
	VisitSequence(t Sequence) (R, error)
	VisitMap(t Map) (R, error)
}

// Visit dispatches t to the matching Visitor method.
func Visit[R any](t Type, v Visitor[R]) (R, error) {
	switch t := t.(type) {
	case Primitive:
		return v.VisitPrimitive(t)
	case String:
		return v.VisitString(t)
	case Enum:
		return v.VisitEnum(t)
	case Object:
		return v.VisitObject(t)
	case Error:
		return v.VisitError(t)
	case Record:
		return v.VisitRecord(t)
	case Optional:
		return v.VisitOptional(t)
	case Sequence:
		return v.VisitSequence(t)
	case Map:
		return v.VisitMap(t)
	}

	var zero R
	if t == nil {
		return zero, ErrNilType
	}

	return zero, fmt.Errorf("iface: unknown type variant %T", t)
}

// Samples returns one representative of every variant, with containers wrapping a
// scalar. Exhaustiveness tests iterate over it.
func Samples() []Type {
	return []Type{
		Int32,
		Text,
		Enum{Name: "sample_enum"},
		Object{Name: "sample_object"},
		Error{Name: "sample_error"},
		Record{Name: "sample_record"},
		Optional{Inner: Int32},
		Sequence{Inner: Int32},
		Map{Inner: Int32},
	}
}

// AllKinds returns every valid TypeKind.
func AllKinds() []TypeKind {
	res := make([]TypeKind, 0, TypeKindTotal-1)
	for k := TypeKind(1); int(k) < TypeKindTotal; k++ {
		res = append(res, k)
	}

	return res
}
