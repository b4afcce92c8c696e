package gen

import (
	"ffi-bindgen/iface"
	"ffi-bindgen/internal/naming"
)

// writeStmt returns the statement that writes expr of type t into the RustBufferBuilder
// bound to self.
func writeStmt(expr string, t iface.Type) (string, error) {
	return iface.Visit[string](t, bufferWriter{expr: expr})
}

// readExpr returns the expression that reads a value of type t from the
// RustBufferStream bound to self.
func readExpr(t iface.Type) (string, error) {
	return iface.Visit[string](t, bufferReader{})
}

type bufferWriter struct {
	expr string
}

func (w bufferWriter) VisitPrimitive(t iface.Primitive) (string, error) {
	lowered, err := Lower(w.expr, t)
	if err != nil {
		return "", err
	}

	return "self.write" + scalars[t.Prim].Suffix + "(" + lowered + ")", nil
}

func (w bufferWriter) VisitString(iface.String) (string, error) {
	return "self.writeString(" + w.expr + ")", nil
}

func (w bufferWriter) VisitEnum(iface.Enum) (string, error) {
	return "self.write" + enumSuffix + "(" + w.expr + ".value)", nil
}

func (w bufferWriter) VisitObject(t iface.Object) (string, error) {
	return "", unsupported(OpWrite, t)
}

func (w bufferWriter) VisitError(t iface.Error) (string, error) {
	return "", unsupported(OpWrite, t)
}

func (w bufferWriter) VisitRecord(t iface.Record) (string, error)     { return w.composite(t) }
func (w bufferWriter) VisitOptional(t iface.Optional) (string, error) { return w.composite(t) }
func (w bufferWriter) VisitSequence(t iface.Sequence) (string, error) { return w.composite(t) }
func (w bufferWriter) VisitMap(t iface.Map) (string, error)           { return w.composite(t) }

func (w bufferWriter) composite(t iface.Type) (string, error) {
	helper, err := HelperName(t)
	if err != nil {
		return "", err
	}

	return "self." + writeName(helper) + "(" + w.expr + ")", nil
}

type bufferReader struct{}

func (bufferReader) VisitPrimitive(t iface.Primitive) (string, error) {
	form, ok := scalars[t.Prim]
	if !ok {
		return "", &iface.InvalidPrimitiveError{Kind: t.Prim}
	}

	return Lift("self.read"+form.Suffix+"()", t)
}

func (bufferReader) VisitString(iface.String) (string, error) {
	return "self.readString()", nil
}

func (bufferReader) VisitEnum(t iface.Enum) (string, error) {
	return naming.ClassName(t.Name) + "(self.read" + enumSuffix + "())", nil
}

func (bufferReader) VisitObject(t iface.Object) (string, error) {
	return "", unsupported(OpRead, t)
}

func (bufferReader) VisitError(t iface.Error) (string, error) {
	return "", unsupported(OpRead, t)
}

func (r bufferReader) VisitRecord(t iface.Record) (string, error)     { return r.composite(t) }
func (r bufferReader) VisitOptional(t iface.Optional) (string, error) { return r.composite(t) }
func (r bufferReader) VisitSequence(t iface.Sequence) (string, error) { return r.composite(t) }
func (r bufferReader) VisitMap(t iface.Map) (string, error)           { return r.composite(t) }

func (bufferReader) composite(t iface.Type) (string, error) {
	helper, err := HelperName(t)
	if err != nil {
		return "", err
	}

	return "self." + readName(helper) + "()", nil
}
