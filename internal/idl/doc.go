// Package idl loads interface descriptions written in YAML and turns them into an
// iface.ComponentInterface.
//
// A description lists the records, enums, errors, objects and functions of one
// namespace:
//
//	namespace: rondpoint
//	records:
//	  - name: point
//	    fields:
//	      - {name: x, type: f64}
//	      - {name: label, type: optional<string>}
//	enums:
//	  - name: color
//	    variants: [red, green]
//	functions:
//	  - name: names
//	    arguments: [{name: values, type: sequence<string>}]
//	    return: map<i32>
//
// Type expressions are scalar names (i8 … u64, f32, f64, bool, string, or their WIT
// spellings s8 … s64), declared names, and the containers optional<T> (option<T>),
// sequence<T> (list<T>) and map<T> (map<string, T>). Problems are reported as
// diagnostics rather than stopping at the first one.
package idl
