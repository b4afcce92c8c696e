package iface

// IterTypes returns every type reachable from the declarations, each canonical name
// once. Contained types come before their containers and a record's field types come
// before the record, so helpers can be emitted in the returned order.
//
// Declarations are walked in this order: records, functions, objects. Recursive
// records terminate because a record is marked before its fields are visited.
func (ci *ComponentInterface) IterTypes() []Type {
	w := typeWalker{ci: ci, seen: map[string]struct{}{}}

	for _, r := range ci.Records {
		w.walk(Record{Name: r.Name})
	}

	for _, f := range ci.Functions {
		w.walkFunction(&f)
	}

	for _, o := range ci.Objects {
		w.walk(Object{Name: o.Name})

		if o.Constructor != nil {
			for _, a := range o.Constructor.Arguments {
				w.walk(a.Type)
			}
		}

		for _, m := range o.Methods {
			w.walkFunction(&m)
		}
	}

	return w.out
}

type typeWalker struct {
	ci   *ComponentInterface
	seen map[string]struct{}
	out  []Type
}

func (w *typeWalker) walkFunction(f *FunctionDecl) {
	for _, a := range f.Arguments {
		w.walk(a.Type)
	}

	if f.Return != nil {
		w.walk(f.Return)
	}

	if f.Throws != "" {
		w.walk(Error{Name: f.Throws})
	}
}

func (w *typeWalker) walk(t Type) {
	if t == nil {
		return
	}

	name, err := CanonicalName(t)
	if err != nil {
		return
	}

	if _, ok := w.seen[name]; ok {
		return
	}

	w.seen[name] = struct{}{}

	switch t := t.(type) {
	case Optional:
		w.walk(t.Inner)
	case Sequence:
		w.walk(t.Inner)
	case Map:
		w.walk(Text)
		w.walk(t.Inner)
	case Record:
		if decl, ok := w.ci.Record(t.Name); ok {
			for _, f := range decl.Fields {
				w.walk(f.Type)
			}
		}
	}

	w.out = append(w.out, t)
}
