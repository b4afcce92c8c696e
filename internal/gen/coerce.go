package gen

import (
	"ffi-bindgen/iface"
	"ffi-bindgen/internal/naming"
)

// Coerce returns a Python expression that normalizes expr to type t, tolerating loosely
// typed callers (an integral float, a numeric string).
//
// Integers are converted with int() only; values outside the declared width are
// rejected by the native side, not here.
func Coerce(expr string, t iface.Type) (string, error) {
	return iface.Visit[string](t, coercer{expr: expr})
}

type coercer struct {
	expr string
	// depth counts the comprehensions enclosing expr.
	depth int
}

func (c coercer) VisitPrimitive(t iface.Primitive) (string, error) {
	form, ok := scalars[t.Prim]
	if !ok {
		return "", &iface.InvalidPrimitiveError{Kind: t.Prim}
	}

	return form.Conv + "(" + c.expr + ")", nil
}

func (c coercer) VisitString(iface.String) (string, error) { return c.expr, nil }
func (c coercer) VisitObject(iface.Object) (string, error) { return c.expr, nil }
func (c coercer) VisitError(iface.Error) (string, error)   { return c.expr, nil }
func (c coercer) VisitRecord(iface.Record) (string, error) { return c.expr, nil }

func (c coercer) VisitEnum(t iface.Enum) (string, error) {
	return naming.ClassName(t.Name) + "(" + c.expr + ")", nil
}

func (c coercer) VisitOptional(t iface.Optional) (string, error) {
	inner, err := iface.Visit[string](t.Inner, c)
	if err != nil {
		return "", err
	}

	return "(None if " + c.expr + " is None else " + inner + ")", nil
}

func (c coercer) VisitSequence(t iface.Sequence) (string, error) {
	item := binder("item", c.depth)

	inner, err := iface.Visit[string](t.Inner, coercer{expr: item, depth: c.depth + 1})
	if err != nil {
		return "", err
	}

	return "list(" + inner + " for " + item + " in " + c.expr + ")", nil
}

func (c coercer) VisitMap(t iface.Map) (string, error) {
	key := binder("key", c.depth)
	value := binder("value", c.depth)

	k, err := iface.Visit[string](iface.Text, coercer{expr: key, depth: c.depth + 1})
	if err != nil {
		return "", err
	}

	v, err := iface.Visit[string](t.Inner, coercer{expr: value, depth: c.depth + 1})
	if err != nil {
		return "", err
	}

	return "dict((" + k + ", " + v + ") for (" + key + ", " + value + ") in " + c.expr + ".items())", nil
}
