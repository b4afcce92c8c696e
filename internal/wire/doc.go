// Package wire is a Go implementation of the buffer encoding shared by the generated
// bindings and the native library.
//
// Integers and floats are big-endian and fixed width. Booleans take one byte, enums
// travel as their int32 discriminant and strings as an int32 byte length followed by
// UTF-8. Optional values carry a one-byte presence tag, sequences and maps an int32
// count. Record fields follow each other in declaration order with no framing.
//
// The code generator takes its size constants from here, and the tests use Codec to
// check that the emitted size expressions match what is actually written.
package wire
