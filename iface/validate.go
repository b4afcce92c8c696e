package iface

import (
	"fmt"
	"slices"
	"strings"

	"ffi-bindgen/internal/diagnostic"
	"ffi-bindgen/internal/naming"
)

// Validate checks that every name reference resolves to a declaration of the right
// kind, that no name is declared twice, and that records do not contain themselves,
// directly or through containers. Names that differ but fold to the same Python
// identifier count as declared twice. Generators assume a description that passed.
func (ci *ComponentInterface) Validate() diagnostic.Diagnostics {
	v := validator{ci: ci, kinds: map[string]TypeKind{}, classes: map[string]string{}}

	if ci.Namespace == "" {
		v.diags.AddError(diagnostic.CodeEmptyName, "namespace is required", "", "namespace")
	}

	v.collectDecls()

	for _, r := range ci.Records {
		decl := "record " + r.Name
		seen := map[string]string{}

		for i, f := range r.Fields {
			path := fmt.Sprintf("fields[%d]", i)
			v.checkMember(seen, naming.VarName, f.Name, decl, path, diagnostic.CodeDuplicateField)
			v.checkType(f.Type, decl, path+"."+f.Name)
		}
	}

	for _, e := range ci.Enums {
		v.checkVariants("enum "+e.Name, e.Variants)
	}

	for _, e := range ci.Errors {
		v.checkVariants("error "+e.Name, e.Variants)
	}

	for i := range ci.Functions {
		v.checkFunction(&ci.Functions[i], "function "+ci.Functions[i].Name)
	}

	for _, o := range ci.Objects {
		decl := "object " + o.Name

		if o.Constructor != nil {
			v.checkArguments(o.Constructor.Arguments, decl, "constructor")
			v.checkThrows(o.Constructor.Throws, decl, "constructor.throws")
		}

		seen := map[string]string{}
		for i := range o.Methods {
			m := &o.Methods[i]
			v.checkMember(seen, naming.FuncName, m.Name, decl, fmt.Sprintf("methods[%d]", i), diagnostic.CodeDuplicateDecl)
			v.checkFunction(m, decl+"."+m.Name)
		}
	}

	v.checkRecordCycles()

	return v.diags
}

type validator struct {
	ci      *ComponentInterface
	kinds   map[string]TypeKind
	// classes maps a Python class name to the declaration that claimed it.
	classes map[string]string
	diags   diagnostic.Diagnostics
}

func (v *validator) collectDecls() {
	add := func(name string, kind TypeKind, decl string) {
		if name == "" {
			v.diags.AddError(diagnostic.CodeEmptyName, "declaration without a name", decl, "")
			return
		}

		if prev, ok := v.kinds[name]; ok {
			v.diags.AddError(diagnostic.CodeDuplicateDecl,
				fmt.Sprintf("%q is already declared as %s", name, kindWord(prev)), decl, "")

			return
		}

		v.kinds[name] = kind

		class := naming.ClassName(name)
		if prev, ok := v.classes[class]; ok {
			v.diags.AddError(diagnostic.CodeDuplicateDecl,
				fmt.Sprintf("%q and %q both become class %s", prev, name, class), decl, "")

			return
		}

		v.classes[class] = name
	}

	for _, r := range v.ci.Records {
		add(r.Name, TypeKindRecord, "record "+r.Name)
	}

	for _, e := range v.ci.Enums {
		add(e.Name, TypeKindEnum, "enum "+e.Name)
	}

	for _, e := range v.ci.Errors {
		add(e.Name, TypeKindError, "error "+e.Name)
	}

	for _, o := range v.ci.Objects {
		add(o.Name, TypeKindObject, "object "+o.Name)
	}

	funcs := map[string]string{}
	for _, f := range v.ci.Functions {
		v.checkMember(funcs, naming.FuncName, f.Name, "function "+f.Name, "", diagnostic.CodeDuplicateDecl)
	}
}

// checkMember records name in seen under its folded Python spelling and reports a
// second member that folds to the same identifier.
func (v *validator) checkMember(seen map[string]string, fold func(string) string, name, decl, path, code string) {
	if name == "" {
		v.diags.AddError(diagnostic.CodeEmptyName, "member without a name", decl, path)
		return
	}

	key := fold(name)

	prev, ok := seen[key]
	switch {
	case !ok:
		seen[key] = name
	case prev == name:
		v.diags.AddError(code, fmt.Sprintf("%q is declared twice", name), decl, path)
	default:
		v.diags.AddError(code, fmt.Sprintf("%q and %q both become %s", prev, name, key), decl, path)
	}
}

func (v *validator) checkVariants(decl string, variants []string) {
	if len(variants) == 0 {
		v.diags.AddWarning(diagnostic.CodeEmptyEnum, "no variants declared", decl, "variants")
	}

	seen := map[string]string{}
	for i, name := range variants {
		v.checkMember(seen, naming.ConstName, name, decl, fmt.Sprintf("variants[%d]", i), diagnostic.CodeDuplicateField)
	}
}

func (v *validator) checkFunction(f *FunctionDecl, decl string) {
	v.checkArguments(f.Arguments, decl, "arguments")

	if f.Return != nil {
		v.checkType(f.Return, decl, "return")
	}

	v.checkThrows(f.Throws, decl, "throws")
}

func (v *validator) checkArguments(args []Argument, decl, path string) {
	seen := map[string]string{}

	for i, a := range args {
		p := fmt.Sprintf("%s[%d]", path, i)
		v.checkMember(seen, naming.VarName, a.Name, decl, p, diagnostic.CodeDuplicateField)
		v.checkType(a.Type, decl, p+"."+a.Name)
	}
}

func (v *validator) checkThrows(name, decl, path string) {
	if name != "" {
		v.checkType(Error{Name: name}, decl, path)
	}
}

// checkType reports references to undeclared names and references whose variant does
// not match the declaration, e.g. Record{Name: "color"} when color is an enum.
func (v *validator) checkType(t Type, decl, path string) {
	switch t := t.(type) {
	case nil:
		v.diags.AddError(diagnostic.CodeUnknownType, "missing type", decl, path)
	case Primitive:
		if !t.Prim.IsValid() {
			v.diags.AddError(diagnostic.CodeUnknownType, "invalid scalar kind "+t.Prim.String(), decl, path)
		}
	case String:
	case Enum:
		v.checkRef(t.Name, TypeKindEnum, decl, path)
	case Object:
		v.checkRef(t.Name, TypeKindObject, decl, path)
	case Error:
		v.checkRef(t.Name, TypeKindError, decl, path)
	case Record:
		v.checkRef(t.Name, TypeKindRecord, decl, path)
	case Optional:
		v.checkType(t.Inner, decl, path)
	case Sequence:
		v.checkType(t.Inner, decl, path)
	case Map:
		v.checkType(t.Inner, decl, path)
	}
}

func (v *validator) checkRef(name string, want TypeKind, decl, path string) {
	got, ok := v.kinds[name]
	if !ok {
		v.diags.AddError(diagnostic.CodeUnknownType, fmt.Sprintf("%q is not declared, expected %s", name, kindWord(want)), decl, path)
		return
	}

	if got != want {
		v.diags.AddError(diagnostic.CodeWrongKind,
			fmt.Sprintf("%q is %s, not %s", name, kindWord(got), kindWord(want)), decl, path)
	}
}

func (v *validator) checkRecordCycles() {
	order, err := topoSort(len(v.ci.Records), v.ci.recordDeps())
	if err == nil {
		return
	}

	done := make(map[int]bool, len(order))
	for _, i := range order {
		done[i] = true
	}

	var stuck []string

	for i, r := range v.ci.Records {
		if !done[i] {
			stuck = append(stuck, r.Name)
		}
	}

	v.diags.AddError(diagnostic.CodeRecordCycle,
		"records form a cycle or depend on one: "+strings.Join(stuck, ", "), "", "records")
}

// RecordOrder returns the record declarations so that every record comes after the
// records its fields mention. It fails when records form a cycle.
func (ci *ComponentInterface) RecordOrder() ([]RecordDecl, error) {
	order, err := topoSort(len(ci.Records), ci.recordDeps())
	if err != nil {
		return nil, fmt.Errorf("iface: ordering records: %w", err)
	}

	res := make([]RecordDecl, 0, len(order))
	for _, i := range order {
		res = append(res, ci.Records[i])
	}

	return res, nil
}

// recordDeps returns, for a record index, the indices of the records its fields mention.
func (ci *ComponentInterface) recordDeps() func(i int) []int {
	index := make(map[string]int, len(ci.Records))
	for i, r := range ci.Records {
		if _, ok := index[r.Name]; !ok {
			index[r.Name] = i
		}
	}

	return func(i int) []int {
		var res []int

		for _, f := range ci.Records[i].Fields {
			for _, name := range recordRefs(f.Type) {
				if j, ok := index[name]; ok && !slices.Contains(res, j) {
					res = append(res, j)
				}
			}
		}

		return res
	}
}

// recordRefs lists the record names mentioned by t, looking through containers.
func recordRefs(t Type) []string {
	switch t := t.(type) {
	case Record:
		return []string{t.Name}
	case Optional:
		return recordRefs(t.Inner)
	case Sequence:
		return recordRefs(t.Inner)
	case Map:
		return recordRefs(t.Inner)
	default:
		return nil
	}
}

func kindWord(k TypeKind) string {
	switch k {
	case TypeKindRecord:
		return "a record"
	case TypeKindEnum:
		return "an enum"
	case TypeKindError:
		return "an error"
	case TypeKindObject:
		return "an object"
	default:
		return strings.ToLower(strings.TrimPrefix(k.String(), "TypeKind"))
	}
}
