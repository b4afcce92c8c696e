package idl

import (
	"errors"
	"fmt"

	"ffi-bindgen/iface"
	"ffi-bindgen/internal/diagnostic"
)

// Interface converts the description into an iface.ComponentInterface. Type
// expressions are parsed first; when they all parse, the result is also validated, so
// the returned diagnostics cover both steps.
func (f *File) Interface() (*iface.ComponentInterface, diagnostic.Diagnostics) {
	b := builder{r: newResolver(f)}
	ci := &iface.ComponentInterface{Namespace: f.Namespace}

	b.checkShadowing(f)

	for _, rec := range f.Records {
		decl := iface.RecordDecl{Name: rec.Name}
		for i, p := range rec.Fields {
			decl.Fields = append(decl.Fields, iface.Field{
				Name: p.Name,
				Type: b.typ(p.Type, "record "+rec.Name, fmt.Sprintf("fields[%d].%s", i, p.Name)),
			})
		}

		ci.Records = append(ci.Records, decl)
	}

	for _, e := range f.Enums {
		ci.Enums = append(ci.Enums, iface.EnumDecl{Name: e.Name, Variants: []string(e.Variants)})
	}

	for _, e := range f.Errors {
		ci.Errors = append(ci.Errors, iface.ErrorDecl{Name: e.Name, Variants: []string(e.Variants)})
	}

	for _, o := range f.Objects {
		decl := iface.ObjectDecl{Name: o.Name}
		owner := "object " + o.Name

		if o.Constructor != nil {
			decl.Constructor = &iface.ConstructorDecl{
				Arguments: b.arguments(o.Constructor.Arguments, owner, "constructor"),
				Throws:    o.Constructor.Throws,
			}
		}

		for _, m := range o.Methods {
			decl.Methods = append(decl.Methods, b.function(&m, owner+"."+m.Name))
		}

		ci.Objects = append(ci.Objects, decl)
	}

	for _, fn := range f.Functions {
		ci.Functions = append(ci.Functions, b.function(&fn, "function "+fn.Name))
	}

	if !b.diags.HasErrors() {
		b.diags.Merge(ci.Validate())
	}

	return ci, b.diags
}

type builder struct {
	r     *resolver
	diags diagnostic.Diagnostics
}

func (b *builder) checkShadowing(f *File) {
	check := func(kind, name string) {
		if name != "" && builtinName(name) {
			b.diags.AddError(diagnostic.CodeShadowedName,
				fmt.Sprintf("%q is a built-in type name, references to it never reach this %s", name, kind),
				kind+" "+name, "name")
		}
	}

	for _, r := range f.Records {
		check("record", r.Name)
	}

	for _, e := range f.Enums {
		check("enum", e.Name)
	}

	for _, e := range f.Errors {
		check("error", e.Name)
	}

	for _, o := range f.Objects {
		check("object", o.Name)
	}
}

func (b *builder) function(fn *Function, decl string) iface.FunctionDecl {
	res := iface.FunctionDecl{
		Name:      fn.Name,
		Arguments: b.arguments(fn.Arguments, decl, "arguments"),
		Throws:    fn.Throws,
	}

	if fn.Return != "" {
		res.Return = b.typ(fn.Return, decl, "return")
	}

	return res
}

func (b *builder) arguments(params []Param, decl, path string) []iface.Argument {
	res := make([]iface.Argument, 0, len(params))

	for i, p := range params {
		res = append(res, iface.Argument{
			Name: p.Name,
			Type: b.typ(p.Type, decl, fmt.Sprintf("%s[%d].%s", path, i, p.Name)),
		})
	}

	return res
}

func (b *builder) typ(expr, decl, path string) iface.Type {
	t, err := b.r.parse(expr)
	if err == nil {
		return t
	}

	code := diagnostic.CodeBadTypeExpr

	switch {
	case errors.Is(err, ErrUnknownName):
		code = diagnostic.CodeUnknownType
	case errors.Is(err, ErrUnsupportedType):
		code = diagnostic.CodeUnsupported
	}

	b.diags.AddError(code, err.Error(), decl, path)

	return nil
}
