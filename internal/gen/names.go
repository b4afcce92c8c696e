package gen

import (
	"fmt"

	"ffi-bindgen/iface"
	"ffi-bindgen/internal/naming"
)

// HelperName returns the class-cased canonical name of t, which suffixes every helper
// routine of the type: Optional<String> -> "OptionalString".
func HelperName(t iface.Type) (string, error) {
	canonical, err := iface.CanonicalName(t)
	if err != nil {
		return "", err
	}

	return naming.ClassName(canonical), nil
}

// Helper routine names. The first two are RustBuffer static methods, consumeInto is a
// RustBuffer method, write is a RustBufferBuilder method and read a RustBufferStream
// method.
func calculateWriteSizeName(helper string) string { return "calculateWriteSizeOf" + helper }
func allocFromName(helper string) string          { return "allocFrom" + helper }
func consumeIntoName(helper string) string        { return "consumeInto" + helper }
func writeName(helper string) string              { return "write" + helper }
func readName(helper string) string               { return "read" + helper }

// binder returns a comprehension variable for the given nesting depth. Generated names
// start with an underscore, which naming.VarName never produces, so they cannot shadow
// arguments, fields or each other.
func binder(role string, depth int) string {
	return fmt.Sprintf("_%s%d", role, depth)
}
