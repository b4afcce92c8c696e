package iface

import "ffi-bindgen/primitive"

var primitiveNames = map[primitive.KindEnum]string{
	primitive.KindInt8:    "Int8",
	primitive.KindUint8:   "UInt8",
	primitive.KindInt16:   "Int16",
	primitive.KindUint16:  "UInt16",
	primitive.KindInt32:   "Int32",
	primitive.KindUint32:  "UInt32",
	primitive.KindInt64:   "Int64",
	primitive.KindUint64:  "UInt64",
	primitive.KindFloat32: "Float32",
	primitive.KindFloat64: "Float64",
	primitive.KindBool:    "Boolean",
}

// canonicalNamer builds a prefix code: every variant contributes a keyword that no
// other keyword starts with, keywords are joined by "_", and declared names can only
// appear last, so a canonical name parses back into exactly one structure.
type canonicalNamer struct{}

func (canonicalNamer) VisitPrimitive(t Primitive) (string, error) {
	name, ok := primitiveNames[t.Prim]
	if !ok {
		return "", &InvalidPrimitiveError{Kind: t.Prim}
	}

	return name, nil
}

func (canonicalNamer) VisitString(String) (string, error)   { return "String", nil }
func (canonicalNamer) VisitEnum(t Enum) (string, error)     { return "Enum_" + t.Name, nil }
func (canonicalNamer) VisitObject(t Object) (string, error) { return "Object_" + t.Name, nil }
func (canonicalNamer) VisitError(t Error) (string, error)   { return "Error_" + t.Name, nil }
func (canonicalNamer) VisitRecord(t Record) (string, error) { return "Record_" + t.Name, nil }

func (c canonicalNamer) VisitOptional(t Optional) (string, error) {
	return c.wrap("Optional", t.Inner)
}

func (c canonicalNamer) VisitSequence(t Sequence) (string, error) {
	return c.wrap("Sequence", t.Inner)
}

func (c canonicalNamer) VisitMap(t Map) (string, error) {
	return c.wrap("Map", t.Inner)
}

func (c canonicalNamer) wrap(keyword string, inner Type) (string, error) {
	name, err := Visit[string](inner, c)
	if err != nil {
		return "", err
	}

	return keyword + "_" + name, nil
}

// CanonicalName returns the structure-derived identifier of t. Structurally identical
// types share a name, distinct structures never do.
func CanonicalName(t Type) (string, error) {
	return Visit[string](t, canonicalNamer{})
}

// MustCanonicalName is CanonicalName for types already known to be well formed.
func MustCanonicalName(t Type) string {
	name, err := CanonicalName(t)
	if err != nil {
		panic(err)
	}

	return name
}
