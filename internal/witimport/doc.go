// Package witimport converts WebAssembly Interface Types, as resolved by
// go.bytecodealliance.org/wit, into an iface.ComponentInterface.
//
// Named records, enums, flat variants and resources become records, enums, errors and
// objects. Anonymous option, list and handle types become the matching iface
// containers; list<tuple<string, T>> is read as map<T>. Kebab-case WIT names are
// turned into snake_case. Functions are not imported.
package witimport
