package gen

import (
	"fmt"

	"ffi-bindgen/iface"
)

// TypeFFI returns the ctypes declaration token for a wire type. The widths match the
// native definitions one to one. It panics on a value outside the closed FFIType set,
// which can only come from a bug in this program.
func TypeFFI(t iface.FFIType) string {
	switch t {
	case iface.FFIInt8:
		return "ctypes.c_int8"
	case iface.FFIUInt8:
		return "ctypes.c_uint8"
	case iface.FFIInt16:
		return "ctypes.c_int16"
	case iface.FFIUInt16:
		return "ctypes.c_uint16"
	case iface.FFIInt32:
		return "ctypes.c_int32"
	case iface.FFIUInt32:
		return "ctypes.c_uint32"
	case iface.FFIInt64:
		return "ctypes.c_int64"
	case iface.FFIUInt64:
		return "ctypes.c_uint64"
	case iface.FFIFloat32:
		return "ctypes.c_float"
	case iface.FFIFloat64:
		return "ctypes.c_double"
	case iface.FFIRustBuffer:
		return "RustBuffer"
	case iface.FFIRustError:
		return "POINTER(RustError)"
	case iface.FFIRustString:
		return "RustString"
	case iface.FFIForeignStringRef:
		return "ctypes.c_char_p"
	}

	panic(fmt.Sprintf("gen: no ctypes token for %s", t))
}

// ReturnFFI is TypeFFI for a restype, where the zero FFIType means no value.
func ReturnFFI(t iface.FFIType) string {
	if t == 0 {
		return "None"
	}

	return TypeFFI(t)
}
