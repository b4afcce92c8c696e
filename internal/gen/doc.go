// Package gen emits the Python (ctypes) fragments that move values across the native
// boundary of a component interface.
//
// Expression generators, each a Visitor over iface.Type:
//   - Coerce normalizes loosely typed caller input to the declared type
//   - Lower converts a coerced value to its wire representation
//   - Lift converts a wire value back to a Python value
//   - WriteSize computes the serialized byte length of a value
//
// Values of composite types (records, optionals, sequences, maps) travel in a
// RustBuffer and are handled by per-type helper routines. A Registry keyed by canonical
// type name holds exactly one HelperSet per composite type; helper bodies are rendered
// with text/template.
//
// Combinations the wire format does not support yet (lowering errors, lifting objects,
// sizing objects or errors) fail with an *UnsupportedError. There is no fallback output.
package gen
