// Package diagnostic provides structured warnings and errors produced while an
// interface description is loaded and validated.
//
// Key capabilities:
//   - Unknown or mis-kinded type references
//   - Duplicate declarations and fields
//   - Recursive records, which have no valid helper emission order
//   - Type expressions that cannot be parsed
package diagnostic
