package witimport

import (
	"errors"
	"fmt"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"ffi-bindgen/iface"
	"ffi-bindgen/internal/naming"
)

// ErrUnsupported reports a WIT type with no iface equivalent.
var ErrUnsupported = errors.New("witimport: unsupported type")

// LoadFile reads a resolved WIT package in JSON form, as printed by
// `wasm-tools component wit --json`, and converts it.
func LoadFile(path, namespace string) (*iface.ComponentInterface, error) {
	res, err := wit.LoadJSON(path)
	if err != nil {
		return nil, fmt.Errorf("witimport: loading %s: %w", path, err)
	}

	return Convert(res, namespace)
}

// Convert declares every named type definition of res in a new interface. Variants
// whose cases carry payloads are skipped. All other conversion failures are returned
// together.
func Convert(res *wit.Resolve, namespace string) (*iface.ComponentInterface, error) {
	return ConvertTypeDefs(res.TypeDefs, namespace)
}

// ConvertTypeDefs is Convert over an explicit list of type definitions.
func ConvertTypeDefs(defs []*wit.TypeDef, namespace string) (*iface.ComponentInterface, error) {
	ci := &iface.ComponentInterface{Namespace: namespace}

	var errs []error

	for _, td := range defs {
		name := typeDefName(td)
		if name == "" {
			continue
		}

		if err := declare(ci, name, td); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	Logger().Debug("converted wit types",
		zap.String("namespace", namespace),
		zap.Int("records", len(ci.Records)),
		zap.Int("enums", len(ci.Enums)),
		zap.Int("errors", len(ci.Errors)),
		zap.Int("objects", len(ci.Objects)))

	return ci, nil
}

func declare(ci *iface.ComponentInterface, name string, td *wit.TypeDef) error {
	switch kind := td.Kind.(type) {
	case *wit.Record:
		decl := iface.RecordDecl{Name: name}

		for _, f := range kind.Fields {
			t, err := TypeOf(f.Type)
			if err != nil {
				return fmt.Errorf("field %s: %w", f.Name, err)
			}

			decl.Fields = append(decl.Fields, iface.Field{Name: naming.VarName(f.Name), Type: t})
		}

		ci.Records = append(ci.Records, decl)
	case *wit.Enum:
		decl := iface.EnumDecl{Name: name}
		for _, c := range kind.Cases {
			decl.Variants = append(decl.Variants, naming.VarName(c.Name))
		}

		ci.Enums = append(ci.Enums, decl)
	case *wit.Variant:
		variants, err := flatCases(kind)
		if err != nil {
			// References to it still fail in TypeOf.
			Logger().Warn("skipping wit variant", zap.String("name", name), zap.Error(err))
			return nil
		}

		ci.Errors = append(ci.Errors, iface.ErrorDecl{Name: name, Variants: variants})
	case *wit.Resource:
		ci.Objects = append(ci.Objects, iface.ObjectDecl{Name: name})
	default:
		// Named aliases, options and lists are inlined where they are used.
		Logger().Debug("not declaring wit type", zap.String("name", name), zap.String("kind", fmt.Sprintf("%T", kind)))
	}

	return nil
}

func flatCases(v *wit.Variant) ([]string, error) {
	res := make([]string, 0, len(v.Cases))

	for _, c := range v.Cases {
		if c.Type != nil {
			return nil, fmt.Errorf("%w: variant case %s carries a payload", ErrUnsupported, c.Name)
		}

		res = append(res, naming.VarName(c.Name))
	}

	return res, nil
}

// TypeOf converts a WIT type reference.
func TypeOf(t wit.Type) (iface.Type, error) {
	if p, ok := Primitive(t); ok {
		return p, nil
	}

	td, ok := t.(*wit.TypeDef)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, t)
	}

	name := typeDefName(td)

	switch kind := td.Kind.(type) {
	case *wit.Record:
		return iface.Record{Name: name}, nil
	case *wit.Enum:
		return iface.Enum{Name: name}, nil
	case *wit.Variant:
		if _, err := flatCases(kind); err != nil {
			return nil, err
		}

		return iface.Error{Name: name}, nil
	case *wit.Resource:
		return iface.Object{Name: name}, nil
	case *wit.Own:
		return iface.Object{Name: typeDefName(kind.Type)}, nil
	case *wit.Borrow:
		return iface.Object{Name: typeDefName(kind.Type)}, nil
	case *wit.Option:
		inner, err := TypeOf(kind.Type)
		if err != nil {
			return nil, err
		}

		return iface.Optional{Inner: inner}, nil
	case *wit.List:
		return list(kind)
	case wit.Type:
		return TypeOf(kind)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, kind)
	}
}

// list reads list<tuple<string, T>> as a map with string keys.
func list(l *wit.List) (iface.Type, error) {
	if td, ok := l.Type.(*wit.TypeDef); ok {
		if tuple, ok := td.Kind.(*wit.Tuple); ok && len(tuple.Types) == 2 {
			if _, isString := tuple.Types[0].(wit.String); isString {
				inner, err := TypeOf(tuple.Types[1])
				if err != nil {
					return nil, err
				}

				return iface.Map{Inner: inner}, nil
			}
		}
	}

	inner, err := TypeOf(l.Type)
	if err != nil {
		return nil, err
	}

	return iface.Sequence{Inner: inner}, nil
}

func typeDefName(td *wit.TypeDef) string {
	if td == nil || td.Name == nil {
		return ""
	}

	return naming.VarName(*td.Name)
}
