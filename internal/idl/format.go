package idl

import (
	"ffi-bindgen/iface"
	"ffi-bindgen/primitive"
)

var scalarNames = map[primitive.KindEnum]string{
	primitive.KindInt8:    "i8",
	primitive.KindInt16:   "i16",
	primitive.KindInt32:   "i32",
	primitive.KindInt64:   "i64",
	primitive.KindUint8:   "u8",
	primitive.KindUint16:  "u16",
	primitive.KindUint32:  "u32",
	primitive.KindUint64:  "u64",
	primitive.KindFloat32: "f32",
	primitive.KindFloat64: "f64",
	primitive.KindBool:    "bool",
}

// FormatType writes t as a type expression that parses back to an equal type.
func FormatType(t iface.Type) string {
	switch t := t.(type) {
	case iface.Primitive:
		return scalarNames[t.Prim]
	case iface.String:
		return "string"
	case iface.Enum:
		return t.Name
	case iface.Object:
		return t.Name
	case iface.Error:
		return t.Name
	case iface.Record:
		return t.Name
	case iface.Optional:
		return "optional<" + FormatType(t.Inner) + ">"
	case iface.Sequence:
		return "sequence<" + FormatType(t.Inner) + ">"
	case iface.Map:
		return "map<" + FormatType(t.Inner) + ">"
	default:
		return ""
	}
}

// FromInterface converts ci back into its YAML form.
func FromInterface(ci *iface.ComponentInterface) *File {
	f := &File{Version: CurrentVersion, Namespace: ci.Namespace}

	for _, r := range ci.Records {
		rec := Record{Name: r.Name}
		for _, field := range r.Fields {
			rec.Fields = append(rec.Fields, Param{Name: field.Name, Type: FormatType(field.Type)})
		}

		f.Records = append(f.Records, rec)
	}

	for _, e := range ci.Enums {
		f.Enums = append(f.Enums, Enum{Name: e.Name, Variants: StringOrArray(e.Variants)})
	}

	for _, e := range ci.Errors {
		f.Errors = append(f.Errors, Enum{Name: e.Name, Variants: StringOrArray(e.Variants)})
	}

	for _, o := range ci.Objects {
		obj := Object{Name: o.Name}

		if o.Constructor != nil {
			obj.Constructor = &Constructor{
				Arguments: formatArguments(o.Constructor.Arguments),
				Throws:    o.Constructor.Throws,
			}
		}

		for i := range o.Methods {
			obj.Methods = append(obj.Methods, formatFunction(&o.Methods[i]))
		}

		f.Objects = append(f.Objects, obj)
	}

	for i := range ci.Functions {
		f.Functions = append(f.Functions, formatFunction(&ci.Functions[i]))
	}

	return f
}

func formatFunction(fn *iface.FunctionDecl) Function {
	res := Function{
		Name:      fn.Name,
		Arguments: formatArguments(fn.Arguments),
		Throws:    fn.Throws,
	}

	if fn.Return != nil {
		res.Return = FormatType(fn.Return)
	}

	return res
}

func formatArguments(args []iface.Argument) []Param {
	var res []Param
	for _, a := range args {
		res = append(res, Param{Name: a.Name, Type: FormatType(a.Type)})
	}

	return res
}
