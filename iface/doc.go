// Package iface describes a component interface as seen by the binding generators.
//
// The value shapes crossing the boundary form the closed Type algebra: scalars, String,
// named references (Enum, Object, Error, Record) and the containers Optional, Sequence
// and Map. Generators dispatch over it with Visit and a Visitor implementation, so a new
// variant is a compile error in every generator that does not handle it.
//
// A ComponentInterface holds the declarations. It is built once by a loader, checked
// with Validate and then only read.
package iface
