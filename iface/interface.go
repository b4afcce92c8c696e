package iface

// Field is a named, typed member of a record.
type Field struct {
	Name string
	Type Type
}

// RecordDecl declares a record and its fields in declaration order.
type RecordDecl struct {
	Name   string
	Fields []Field
}

// EnumDecl declares an enumeration. Variant discriminants start at 1 and follow
// declaration order.
type EnumDecl struct {
	Name     string
	Variants []string
}

// Discriminant returns the wire value of the named variant, or 0 if it is not declared.
func (e *EnumDecl) Discriminant(variant string) int32 {
	for i, v := range e.Variants {
		if v == variant {
			return int32(i + 1)
		}
	}

	return 0
}

// ErrorDecl declares an error type and its variants.
type ErrorDecl struct {
	Name     string
	Variants []string
}

// Argument is a named function parameter.
type Argument struct {
	Name string
	Type Type
}

// FunctionDecl declares a free function or an object method.
// Return is nil for functions without a result; Throws names an ErrorDecl or is empty.
type FunctionDecl struct {
	Name      string
	Arguments []Argument
	Return    Type
	Throws    string
}

// ConstructorDecl declares how an object instance is created.
type ConstructorDecl struct {
	Arguments []Argument
	Throws    string
}

// ObjectDecl declares an opaque object, its constructor and its methods.
type ObjectDecl struct {
	Name        string
	Constructor *ConstructorDecl
	Methods     []FunctionDecl
}

// ComponentInterface is the parsed interface description the generators read from.
// It is never modified once built.
type ComponentInterface struct {
	Namespace string
	Records   []RecordDecl
	Enums     []EnumDecl
	Errors    []ErrorDecl
	Objects   []ObjectDecl
	Functions []FunctionDecl
}

// Record looks up a record declaration by name.
func (ci *ComponentInterface) Record(name string) (*RecordDecl, bool) {
	for i := range ci.Records {
		if ci.Records[i].Name == name {
			return &ci.Records[i], true
		}
	}

	return nil, false
}

// Enum looks up an enum declaration by name.
func (ci *ComponentInterface) Enum(name string) (*EnumDecl, bool) {
	for i := range ci.Enums {
		if ci.Enums[i].Name == name {
			return &ci.Enums[i], true
		}
	}

	return nil, false
}

// Error looks up an error declaration by name.
func (ci *ComponentInterface) Error(name string) (*ErrorDecl, bool) {
	for i := range ci.Errors {
		if ci.Errors[i].Name == name {
			return &ci.Errors[i], true
		}
	}

	return nil, false
}

// Object looks up an object declaration by name.
func (ci *ComponentInterface) Object(name string) (*ObjectDecl, bool) {
	for i := range ci.Objects {
		if ci.Objects[i].Name == name {
			return &ci.Objects[i], true
		}
	}

	return nil, false
}

// Function looks up a free function by name.
func (ci *ComponentInterface) Function(name string) (*FunctionDecl, bool) {
	for i := range ci.Functions {
		if ci.Functions[i].Name == name {
			return &ci.Functions[i], true
		}
	}

	return nil, false
}
