package idl

import (
	"errors"
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"ffi-bindgen/iface"
	"ffi-bindgen/internal/naming"
	"ffi-bindgen/internal/witimport"
	"ffi-bindgen/primitive"
)

var (
	// ErrSyntax reports a malformed type expression.
	ErrSyntax = errors.New("malformed type expression")
	// ErrUnknownName reports a name that is neither a scalar nor declared.
	ErrUnknownName = errors.New("unknown type name")
	// ErrUnsupportedType reports a well-formed type with no FFI mapping, such as char.
	ErrUnsupportedType = errors.New("unsupported type")
)

// resolver parses type expressions against the names a description declares.
type resolver struct {
	kinds map[string]iface.TypeKind
}

func newResolver(f *File) *resolver {
	r := &resolver{kinds: map[string]iface.TypeKind{}}

	declare := func(name string, kind iface.TypeKind) {
		if _, ok := r.kinds[name]; !ok && name != "" {
			r.kinds[name] = kind
		}
	}

	for _, rec := range f.Records {
		declare(rec.Name, iface.TypeKindRecord)
	}

	for _, e := range f.Enums {
		declare(e.Name, iface.TypeKindEnum)
	}

	for _, e := range f.Errors {
		declare(e.Name, iface.TypeKindError)
	}

	for _, o := range f.Objects {
		declare(o.Name, iface.TypeKindObject)
	}

	return r
}

// ParseType parses a type expression that only uses scalars and containers.
func ParseType(expr string) (iface.Type, error) {
	return (&resolver{}).parse(expr)
}

func (r *resolver) parse(expr string) (iface.Type, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrSyntax)
	}

	open := strings.IndexByte(s, '<')
	if open < 0 {
		if strings.ContainsAny(s, ">, ") {
			return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
		}

		return r.named(s)
	}

	if !strings.HasSuffix(s, ">") {
		return nil, fmt.Errorf("%w: %q is missing a closing '>'", ErrSyntax, s)
	}

	head := strings.ToLower(strings.TrimSpace(s[:open]))

	args, err := splitArgs(s[open+1 : len(s)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
	}

	switch head {
	case "optional", "option":
		inner, err := r.single(head, args)
		return iface.Optional{Inner: inner}, err
	case "sequence", "list":
		inner, err := r.single(head, args)
		return iface.Sequence{Inner: inner}, err
	case "map":
		if len(args) == 2 {
			key, err := r.parse(args[0])
			if err != nil {
				return nil, err
			}

			if key.Kind() != iface.TypeKindString {
				return nil, fmt.Errorf("%w: map keys must be string, got %q", ErrSyntax, args[0])
			}

			args = args[1:]
		}

		inner, err := r.single(head, args)

		return iface.Map{Inner: inner}, err
	default:
		return nil, fmt.Errorf("%w: unknown container %q", ErrSyntax, head)
	}
}

func (r *resolver) single(head string, args []string) (iface.Type, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes one type argument, got %d", ErrSyntax, head, len(args))
	}

	return r.parse(args[0])
}

func (r *resolver) named(name string) (iface.Type, error) {
	if k := primitive.FromName(name); k.IsValid() {
		return iface.Primitive{Prim: k}, nil
	}

	if strings.EqualFold(name, "string") {
		return iface.Text, nil
	}

	switch r.kinds[name] {
	case iface.TypeKindRecord:
		return iface.Record{Name: name}, nil
	case iface.TypeKindEnum:
		return iface.Enum{Name: name}, nil
	case iface.TypeKindError:
		return iface.Error{Name: name}, nil
	case iface.TypeKindObject:
		return iface.Object{Name: name}, nil
	}

	if wt, err := wit.ParseType(name); err == nil {
		t, ok := witimport.Primitive(wt)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, name)
		}

		return t, nil
	}

	if hint, ok := naming.Suggest(name, r.names()); ok {
		return nil, fmt.Errorf("%w: %q, did you mean %q?", ErrUnknownName, name, hint)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// builtinName reports whether name resolves to a built-in type. Declarations with
// such a name can never be referenced.
func builtinName(name string) bool {
	if primitive.FromName(name).IsValid() || strings.EqualFold(name, "string") {
		return true
	}

	_, err := wit.ParseType(name)

	return err == nil
}

// names lists everything a type name may resolve to.
func (r *resolver) names() []string {
	res := make([]string, 0, len(r.kinds)+len(scalarNames)+1)
	for name := range r.kinds {
		res = append(res, name)
	}

	for _, name := range scalarNames {
		res = append(res, name)
	}

	return append(res, "string")
}

// splitArgs splits a type argument list at top-level commas.
func splitArgs(s string) ([]string, error) {
	var (
		args  []string
		depth int
		start int
	)

	for i, ch := range s {
		switch ch {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced '>'")
			}
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}

	if depth != 0 {
		return nil, errors.New("unbalanced '<'")
	}

	args = append(args, s[start:])

	for i, a := range args {
		args[i] = strings.TrimSpace(a)
		if args[i] == "" {
			return nil, errors.New("empty type argument")
		}
	}

	return args, nil
}
