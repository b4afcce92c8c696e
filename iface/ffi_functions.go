package iface

import "fmt"

// FFIArgument is one parameter of a native entry point.
type FFIArgument struct {
	Name string
	Type FFIType
}

// FFIFunction is the low-level signature of a native entry point.
// Return is zero when the function returns nothing.
type FFIFunction struct {
	Name      string
	Arguments []FFIArgument
	Return    FFIType
}

// HasReturn reports whether the entry point produces a value.
func (f *FFIFunction) HasReturn() bool {
	return f.Return != 0
}

// outErrArgument is appended to every entry point that can fail.
const outErrArgument = "out_err"

// FFIFunctions derives the native entry points for every declaration, followed by the
// buffer and string management builtins the generated code relies on.
func (ci *ComponentInterface) FFIFunctions() ([]FFIFunction, error) {
	var res []FFIFunction

	for _, f := range ci.Functions {
		fn, err := lowerSignature(ci.Namespace+"_"+f.Name, nil, &f)
		if err != nil {
			return nil, err
		}

		res = append(res, fn)
	}

	for _, o := range ci.Objects {
		handle := []FFIArgument{{Name: "handle", Type: FFIUInt64}}

		if o.Constructor != nil {
			fn, err := lowerSignature(ci.Namespace+"_"+o.Name+"_new", nil, &FunctionDecl{
				Arguments: o.Constructor.Arguments,
				Throws:    o.Constructor.Throws,
			})
			if err != nil {
				return nil, err
			}

			fn.Return = FFIUInt64
			res = append(res, fn)
		}

		for _, m := range o.Methods {
			fn, err := lowerSignature(ci.Namespace+"_"+o.Name+"_"+m.Name, handle, &m)
			if err != nil {
				return nil, err
			}

			res = append(res, fn)
		}

		res = append(res, FFIFunction{
			Name:      "ffi_" + ci.Namespace + "_" + o.Name + "_object_free",
			Arguments: handle,
		})
	}

	return append(res, ci.builtinFunctions()...), nil
}

func lowerSignature(name string, leading []FFIArgument, f *FunctionDecl) (FFIFunction, error) {
	fn := FFIFunction{Name: name}
	fn.Arguments = append(fn.Arguments, leading...)

	for _, a := range f.Arguments {
		ft, err := FFITypeOf(a.Type)
		if err != nil {
			return FFIFunction{}, fmt.Errorf("%s: argument %s: %w", name, a.Name, err)
		}

		fn.Arguments = append(fn.Arguments, FFIArgument{Name: a.Name, Type: ft})
	}

	if f.Return != nil {
		ft, err := FFITypeOf(f.Return)
		if err != nil {
			return FFIFunction{}, fmt.Errorf("%s: return: %w", name, err)
		}

		fn.Return = ft
	}

	if f.Throws != "" {
		fn.Arguments = append(fn.Arguments, FFIArgument{Name: outErrArgument, Type: FFIRustError})
	}

	return fn, nil
}

func (ci *ComponentInterface) builtinFunctions() []FFIFunction {
	prefix := "ffi_" + ci.Namespace + "_"

	return []FFIFunction{
		{
			Name:      prefix + "rustbuffer_alloc",
			Arguments: []FFIArgument{{Name: "size", Type: FFIInt32}, {Name: outErrArgument, Type: FFIRustError}},
			Return:    FFIRustBuffer,
		},
		{
			Name:      prefix + "rustbuffer_free",
			Arguments: []FFIArgument{{Name: "buf", Type: FFIRustBuffer}, {Name: outErrArgument, Type: FFIRustError}},
		},
		{
			Name: prefix + "rustbuffer_reserve",
			Arguments: []FFIArgument{
				{Name: "buf", Type: FFIRustBuffer},
				{Name: "additional", Type: FFIInt32},
				{Name: outErrArgument, Type: FFIRustError},
			},
			Return: FFIRustBuffer,
		},
		{
			Name:      prefix + "string_alloc_from",
			Arguments: []FFIArgument{{Name: "str", Type: FFIForeignStringRef}, {Name: outErrArgument, Type: FFIRustError}},
			Return:    FFIRustString,
		},
		{
			Name:      prefix + "string_free",
			Arguments: []FFIArgument{{Name: "str", Type: FFIRustString}, {Name: outErrArgument, Type: FFIRustError}},
		},
	}
}
