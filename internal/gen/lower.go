package gen

import (
	"ffi-bindgen/iface"
	"ffi-bindgen/primitive"
)

// Lower returns a Python expression converting the already coerced value expr of type t
// into the value passed to the native function. Errors cannot be lowered.
func Lower(expr string, t iface.Type) (string, error) {
	return iface.Visit[string](t, lowerer{expr: expr})
}

type lowerer struct {
	expr string
}

func (l lowerer) VisitPrimitive(t iface.Primitive) (string, error) {
	if _, ok := scalars[t.Prim]; !ok {
		return "", &iface.InvalidPrimitiveError{Kind: t.Prim}
	}

	if t.Prim == primitive.KindBool {
		return "(1 if " + l.expr + " else 0)", nil
	}

	return l.expr, nil
}

func (l lowerer) VisitString(iface.String) (string, error) {
	return "RustString.allocFromString(" + l.expr + ")", nil
}

func (l lowerer) VisitEnum(iface.Enum) (string, error) {
	return "(" + l.expr + ".value)", nil
}

func (l lowerer) VisitObject(iface.Object) (string, error) {
	return "(" + l.expr + "._uniffi_handle)", nil
}

func (l lowerer) VisitError(t iface.Error) (string, error) {
	return "", unsupported(OpLower, t)
}

func (l lowerer) VisitRecord(t iface.Record) (string, error)     { return l.composite(t) }
func (l lowerer) VisitOptional(t iface.Optional) (string, error) { return l.composite(t) }
func (l lowerer) VisitSequence(t iface.Sequence) (string, error) { return l.composite(t) }
func (l lowerer) VisitMap(t iface.Map) (string, error)           { return l.composite(t) }

func (l lowerer) composite(t iface.Type) (string, error) {
	helper, err := HelperName(t)
	if err != nil {
		return "", err
	}

	return "RustBuffer." + allocFromName(helper) + "(" + l.expr + ")", nil
}
