package gen

import (
	"fmt"

	"go.uber.org/zap"

	"ffi-bindgen/iface"
)

// Registry holds one HelperSet per composite canonical name. Sets are kept in
// registration order, and registering a type first registers the composite types it
// contains, so Helpers always lists a helper after the helpers it calls.
type Registry struct {
	ci       *iface.ComponentInterface
	indent   string
	sets     map[string]*HelperSet
	order    []*HelperSet
	visiting map[string]bool
}

// NewRegistry creates an empty registry resolving record fields through ci.
func NewRegistry(ci *iface.ComponentInterface, indent string) *Registry {
	return &Registry{
		ci:       ci,
		indent:   indent,
		sets:     map[string]*HelperSet{},
		visiting: map[string]bool{},
	}
}

// BuildRegistry registers every type reachable from ci in one walk.
func BuildRegistry(ci *iface.ComponentInterface, indent string) (*Registry, error) {
	r := NewRegistry(ci, indent)

	for _, t := range ci.IterTypes() {
		if _, err := r.Register(t); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register returns the HelperSet of t, rendering it on first use. Non-composite types
// need no helpers and yield nil.
func (r *Registry) Register(t iface.Type) (*HelperSet, error) {
	if t == nil {
		return nil, iface.ErrNilType
	}

	if !iface.IsComposite(t) {
		return nil, nil
	}

	canonical, err := iface.CanonicalName(t)
	if err != nil {
		return nil, err
	}

	if set, ok := r.sets[canonical]; ok {
		return set, nil
	}

	if r.visiting[canonical] {
		return nil, fmt.Errorf("gen: %s contains itself", canonical)
	}

	r.visiting[canonical] = true
	defer delete(r.visiting, canonical)

	for _, dep := range r.dependencies(t) {
		if _, err := r.Register(dep); err != nil {
			return nil, err
		}
	}

	set, err := renderHelpers(r.ci, t, r.indent)
	if err != nil {
		return nil, err
	}

	r.sets[canonical] = set
	r.order = append(r.order, set)

	Logger().Debug("registered helpers",
		zap.String("canonical", canonical),
		zap.String("name", set.Name))

	return set, nil
}

func (r *Registry) dependencies(t iface.Type) []iface.Type {
	switch t := t.(type) {
	case iface.Optional:
		return []iface.Type{t.Inner}
	case iface.Sequence:
		return []iface.Type{t.Inner}
	case iface.Map:
		return []iface.Type{t.Inner}
	case iface.Record:
		decl, ok := r.ci.Record(t.Name)
		if !ok {
			return nil
		}

		deps := make([]iface.Type, 0, len(decl.Fields))
		for _, f := range decl.Fields {
			deps = append(deps, f.Type)
		}

		return deps
	default:
		return nil
	}
}

// Lookup returns the HelperSet registered under a canonical name.
func (r *Registry) Lookup(canonical string) (*HelperSet, bool) {
	set, ok := r.sets[canonical]
	return set, ok
}

// Helpers returns all sets, each after the sets its routines call.
func (r *Registry) Helpers() []*HelperSet {
	return r.order
}

// Len returns the number of registered composite types.
func (r *Registry) Len() int {
	return len(r.order)
}
