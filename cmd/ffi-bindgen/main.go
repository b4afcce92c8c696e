// Package main provides the CLI entrypoint for ffi-bindgen.
//
// ffi-bindgen reads an interface description and produces the fragments a Python
// binding template needs:
//   - ctypes declarations for every native entry point
//   - coerce, lower and lift expressions for every argument and return value
//   - RustBuffer helper routines for every composite type, generated once each
package main

func main() {
	Execute()
}
