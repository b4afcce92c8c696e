package witimport

import (
	"go.bytecodealliance.org/wit"

	"ffi-bindgen/iface"
)

// Primitive maps a WIT primitive type. It reports false for char and for anything that
// is not a primitive.
func Primitive(t wit.Type) (iface.Type, bool) {
	switch t.(type) {
	case wit.Bool:
		return iface.Boolean, true
	case wit.S8:
		return iface.Int8, true
	case wit.U8:
		return iface.UInt8, true
	case wit.S16:
		return iface.Int16, true
	case wit.U16:
		return iface.UInt16, true
	case wit.S32:
		return iface.Int32, true
	case wit.U32:
		return iface.UInt32, true
	case wit.S64:
		return iface.Int64, true
	case wit.U64:
		return iface.UInt64, true
	case wit.F32:
		return iface.Float32, true
	case wit.F64:
		return iface.Float64, true
	case wit.String:
		return iface.Text, true
	default:
		return nil, false
	}
}
