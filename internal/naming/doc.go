// Package naming converts raw interface identifiers into the casing conventions of the
// generated code. The conversions are total and idempotent on their own output; they do
// not detect two identifiers folding to the same result.
package naming
