package gen

import (
	"strconv"

	"ffi-bindgen/iface"
	"ffi-bindgen/internal/wire"
)

// WriteSize returns a Python expression for the exact number of bytes value expr of
// type t occupies inside a RustBuffer. Objects and errors have no buffer encoding.
func WriteSize(expr string, t iface.Type) (string, error) {
	return iface.Visit[string](t, sizer{expr: expr})
}

type sizer struct {
	expr string
}

func (s sizer) VisitPrimitive(t iface.Primitive) (string, error) {
	form, ok := scalars[t.Prim]
	if !ok {
		return "", &iface.InvalidPrimitiveError{Kind: t.Prim}
	}

	return form.Size, nil
}

func (s sizer) VisitString(iface.String) (string, error) {
	return strconv.Itoa(wire.StringLengthPrefixSize) + " + len(" + s.expr + ".encode('utf-8'))", nil
}

func (s sizer) VisitEnum(iface.Enum) (string, error) {
	return strconv.Itoa(wire.EnumSize), nil
}

func (s sizer) VisitObject(t iface.Object) (string, error) {
	return "", unsupported(OpWriteSize, t)
}

func (s sizer) VisitError(t iface.Error) (string, error) {
	return "", unsupported(OpWriteSize, t)
}

func (s sizer) VisitRecord(t iface.Record) (string, error)     { return s.composite(t) }
func (s sizer) VisitOptional(t iface.Optional) (string, error) { return s.composite(t) }
func (s sizer) VisitSequence(t iface.Sequence) (string, error) { return s.composite(t) }
func (s sizer) VisitMap(t iface.Map) (string, error)           { return s.composite(t) }

func (s sizer) composite(t iface.Type) (string, error) {
	helper, err := HelperName(t)
	if err != nil {
		return "", err
	}

	return "RustBuffer." + calculateWriteSizeName(helper) + "(" + s.expr + ")", nil
}
