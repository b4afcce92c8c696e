package gen

import (
	"fmt"

	"go.uber.org/zap"

	"ffi-bindgen/iface"
	"ffi-bindgen/internal/naming"
)

// GeneratorConfig holds configuration for fragment generation.
type GeneratorConfig struct {
	// Namespace replaces the interface namespace in native entry point names when set.
	Namespace string
	// Indent is one indentation level of helper bodies.
	Indent string
	// ReturnVar is the variable the renderer stores native return values in.
	ReturnVar string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Indent:    "    ",
		ReturnVar: "_retval",
	}
}

// Generator turns a validated interface description into a Bundle.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Bundle is everything the renderer substitutes into the Python module template.
type Bundle struct {
	Namespace    string             `yaml:"namespace"`
	FFIFunctions []FFIFunctionDecl  `yaml:"ffi_functions"`
	Helpers      []*HelperSet       `yaml:"helpers,omitempty"`
	Records      []RecordFragment   `yaml:"records,omitempty"`
	Enums        []EnumFragment     `yaml:"enums,omitempty"`
	Errors       []EnumFragment     `yaml:"errors,omitempty"`
	Functions    []FunctionFragment `yaml:"functions,omitempty"`
	Objects      []ObjectFragment   `yaml:"objects,omitempty"`
}

// FFIFunctionDecl is a native entry point with ctypes tokens for argtypes and restype.
type FFIFunctionDecl struct {
	Name     string   `yaml:"name"`
	ArgNames []string `yaml:"arg_names,omitempty"`
	ArgTypes []string `yaml:"argtypes"`
	RestType string   `yaml:"restype"`
}

// RecordFragment describes the Python class of a record.
type RecordFragment struct {
	Name      string          `yaml:"name"`
	ClassName string          `yaml:"class_name"`
	Fields    []FieldFragment `yaml:"fields"`
}

// FieldFragment is one record field.
type FieldFragment struct {
	Name    string `yaml:"name"`
	VarName string `yaml:"var_name"`
	Type    string `yaml:"type"`
}

// EnumFragment describes the Python class of an enum or error.
type EnumFragment struct {
	Name      string            `yaml:"name"`
	ClassName string            `yaml:"class_name"`
	Variants  []VariantFragment `yaml:"variants"`
}

// VariantFragment is one enum case with its discriminant.
type VariantFragment struct {
	Name  string `yaml:"name"`
	Const string `yaml:"const"`
	Value int32  `yaml:"value"`
}

// FunctionFragment holds the expressions of one Python wrapper function or method.
type FunctionFragment struct {
	Name      string             `yaml:"name"`
	FuncName  string             `yaml:"func_name"`
	FFIName   string             `yaml:"ffi_name"`
	Arguments []ArgumentFragment `yaml:"arguments,omitempty"`
	Return    *ReturnFragment    `yaml:"return,omitempty"`
	Throws    string             `yaml:"throws,omitempty"`
}

// ArgumentFragment is a wrapper argument: coerce it first, then pass Lower to FFIName.
type ArgumentFragment struct {
	Name    string `yaml:"name"`
	VarName string `yaml:"var_name"`
	Coerce  string `yaml:"coerce"`
	Lower   string `yaml:"lower"`
	FFIType string `yaml:"ffi_type"`
}

// ReturnFragment lifts the native return value held in the configured variable.
type ReturnFragment struct {
	Type    string `yaml:"type"`
	Lift    string `yaml:"lift"`
	FFIType string `yaml:"ffi_type"`
}

// ObjectFragment holds the constructor and methods of an object class.
type ObjectFragment struct {
	Name        string             `yaml:"name"`
	ClassName   string             `yaml:"class_name"`
	Constructor *FunctionFragment  `yaml:"constructor,omitempty"`
	Methods     []FunctionFragment `yaml:"methods,omitempty"`
	FreeFFIName string             `yaml:"free_ffi_name"`
}

// Generate produces the bundle for ci. It fails on the first unsupported operation and
// never returns partial output.
func (g *Generator) Generate(ci *iface.ComponentInterface) (*Bundle, error) {
	if diags := ci.Validate(); diags.HasErrors() {
		return nil, fmt.Errorf("invalid interface: %w", diags.Error())
	}

	if g.config.Namespace != "" {
		overridden := *ci
		overridden.Namespace = g.config.Namespace
		ci = &overridden
	}

	log := Logger().With(zap.String("namespace", ci.Namespace))

	registry, err := BuildRegistry(ci, g.config.Indent)
	if err != nil {
		return nil, err
	}

	b := &Bundle{Namespace: ci.Namespace, Helpers: registry.Helpers()}

	if b.FFIFunctions, err = ffiDecls(ci); err != nil {
		return nil, err
	}

	for _, r := range ci.Records {
		b.Records = append(b.Records, recordFragment(&r))
	}

	for _, e := range ci.Enums {
		b.Enums = append(b.Enums, enumFragment(e.Name, e.Variants))
	}

	for _, e := range ci.Errors {
		b.Errors = append(b.Errors, enumFragment(e.Name, e.Variants))
	}

	for i := range ci.Functions {
		f := &ci.Functions[i]

		frag, err := g.functionFragment(f, ci.Namespace+"_"+f.Name)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", f.Name, err)
		}

		b.Functions = append(b.Functions, frag)
	}

	for i := range ci.Objects {
		frag, err := g.objectFragment(ci.Namespace, &ci.Objects[i])
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", ci.Objects[i].Name, err)
		}

		b.Objects = append(b.Objects, frag)
	}

	log.Info("generated bundle",
		zap.Int("helpers", len(b.Helpers)),
		zap.Int("ffi_functions", len(b.FFIFunctions)),
		zap.Int("functions", len(b.Functions)),
		zap.Int("objects", len(b.Objects)))

	return b, nil
}

func ffiDecls(ci *iface.ComponentInterface) ([]FFIFunctionDecl, error) {
	fns, err := ci.FFIFunctions()
	if err != nil {
		return nil, err
	}

	res := make([]FFIFunctionDecl, 0, len(fns))

	for _, fn := range fns {
		decl := FFIFunctionDecl{Name: fn.Name, ArgTypes: []string{}, RestType: ReturnFFI(fn.Return)}
		for _, a := range fn.Arguments {
			decl.ArgNames = append(decl.ArgNames, a.Name)
			decl.ArgTypes = append(decl.ArgTypes, TypeFFI(a.Type))
		}

		res = append(res, decl)
	}

	return res, nil
}

func recordFragment(r *iface.RecordDecl) RecordFragment {
	frag := RecordFragment{Name: r.Name, ClassName: naming.ClassName(r.Name)}

	for _, f := range r.Fields {
		frag.Fields = append(frag.Fields, FieldFragment{
			Name:    f.Name,
			VarName: naming.VarName(f.Name),
			Type:    iface.MustCanonicalName(f.Type),
		})
	}

	return frag
}

func enumFragment(name string, variants []string) EnumFragment {
	frag := EnumFragment{Name: name, ClassName: naming.ClassName(name)}

	for i, v := range variants {
		frag.Variants = append(frag.Variants, VariantFragment{
			Name:  v,
			Const: naming.ConstName(v),
			Value: int32(i + 1),
		})
	}

	return frag
}

func (g *Generator) functionFragment(f *iface.FunctionDecl, ffiName string) (FunctionFragment, error) {
	frag := FunctionFragment{
		Name:     f.Name,
		FuncName: naming.FuncName(f.Name),
		FFIName:  ffiName,
	}

	if f.Throws != "" {
		frag.Throws = naming.ClassName(f.Throws)
	}

	args, err := argumentFragments(f.Arguments)
	if err != nil {
		return FunctionFragment{}, err
	}

	frag.Arguments = args

	if f.Return != nil {
		ret, err := g.returnFragment(f.Return)
		if err != nil {
			return FunctionFragment{}, fmt.Errorf("return: %w", err)
		}

		frag.Return = ret
	}

	return frag, nil
}

func argumentFragments(args []iface.Argument) ([]ArgumentFragment, error) {
	res := make([]ArgumentFragment, 0, len(args))

	for _, a := range args {
		frag, err := argumentFragment(a)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", a.Name, err)
		}

		res = append(res, frag)
	}

	return res, nil
}

func argumentFragment(a iface.Argument) (ArgumentFragment, error) {
	name := naming.VarName(a.Name)

	coerce, err := Coerce(name, a.Type)
	if err != nil {
		return ArgumentFragment{}, err
	}

	lower, err := Lower(name, a.Type)
	if err != nil {
		return ArgumentFragment{}, err
	}

	ft, err := iface.FFITypeOf(a.Type)
	if err != nil {
		return ArgumentFragment{}, err
	}

	return ArgumentFragment{
		Name:    a.Name,
		VarName: name,
		Coerce:  coerce,
		Lower:   lower,
		FFIType: TypeFFI(ft),
	}, nil
}

func (g *Generator) returnFragment(t iface.Type) (*ReturnFragment, error) {
	lift, err := Lift(g.config.ReturnVar, t)
	if err != nil {
		return nil, err
	}

	ft, err := iface.FFITypeOf(t)
	if err != nil {
		return nil, err
	}

	return &ReturnFragment{
		Type:    iface.MustCanonicalName(t),
		Lift:    lift,
		FFIType: TypeFFI(ft),
	}, nil
}

func (g *Generator) objectFragment(namespace string, o *iface.ObjectDecl) (ObjectFragment, error) {
	frag := ObjectFragment{
		Name:        o.Name,
		ClassName:   naming.ClassName(o.Name),
		FreeFFIName: "ffi_" + namespace + "_" + o.Name + "_object_free",
	}

	if o.Constructor != nil {
		args, err := argumentFragments(o.Constructor.Arguments)
		if err != nil {
			return ObjectFragment{}, fmt.Errorf("constructor: %w", err)
		}

		frag.Constructor = &FunctionFragment{
			Name:      "new",
			FuncName:  "__init__",
			FFIName:   namespace + "_" + o.Name + "_new",
			Arguments: args,
		}

		if o.Constructor.Throws != "" {
			frag.Constructor.Throws = naming.ClassName(o.Constructor.Throws)
		}
	}

	for i := range o.Methods {
		m := &o.Methods[i]

		method, err := g.functionFragment(m, namespace+"_"+o.Name+"_"+m.Name)
		if err != nil {
			return ObjectFragment{}, fmt.Errorf("method %s: %w", m.Name, err)
		}

		frag.Methods = append(frag.Methods, method)
	}

	return frag, nil
}
