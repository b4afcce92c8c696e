package gen

import (
	"ffi-bindgen/iface"
	"ffi-bindgen/internal/naming"
	"ffi-bindgen/primitive"
)

// Lift returns a Python expression converting the native return value expr of type t
// back into a Python value. Consuming a RustString or RustBuffer frees it, so the
// expression must be evaluated once. Objects and errors cannot be lifted.
func Lift(expr string, t iface.Type) (string, error) {
	return iface.Visit[string](t, lifter{expr: expr})
}

type lifter struct {
	expr string
}

func (l lifter) VisitPrimitive(t iface.Primitive) (string, error) {
	form, ok := scalars[t.Prim]
	if !ok {
		return "", &iface.InvalidPrimitiveError{Kind: t.Prim}
	}

	if t.Prim == primitive.KindBool {
		return "(True if " + l.expr + " else False)", nil
	}

	return form.Conv + "(" + l.expr + ")", nil
}

func (l lifter) VisitString(iface.String) (string, error) {
	return l.expr + ".consumeIntoString()", nil
}

func (l lifter) VisitEnum(t iface.Enum) (string, error) {
	return naming.ClassName(t.Name) + "(" + l.expr + ")", nil
}

func (l lifter) VisitObject(t iface.Object) (string, error) {
	return "", unsupported(OpLift, t)
}

func (l lifter) VisitError(t iface.Error) (string, error) {
	return "", unsupported(OpLift, t)
}

func (l lifter) VisitRecord(t iface.Record) (string, error)     { return l.composite(t) }
func (l lifter) VisitOptional(t iface.Optional) (string, error) { return l.composite(t) }
func (l lifter) VisitSequence(t iface.Sequence) (string, error) { return l.composite(t) }
func (l lifter) VisitMap(t iface.Map) (string, error)           { return l.composite(t) }

func (l lifter) composite(t iface.Type) (string, error) {
	helper, err := HelperName(t)
	if err != nil {
		return "", err
	}

	return l.expr + "." + consumeIntoName(helper) + "()", nil
}
