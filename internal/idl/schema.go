package idl

// File is the YAML form of an interface description.
type File struct {
	Version   string     `yaml:"version,omitempty"`
	Namespace string     `yaml:"namespace"`
	Records   []Record   `yaml:"records,omitempty"`
	Enums     []Enum     `yaml:"enums,omitempty"`
	Errors    []Enum     `yaml:"errors,omitempty"`
	Objects   []Object   `yaml:"objects,omitempty"`
	Functions []Function `yaml:"functions,omitempty"`
}

// Record declares a record and its fields.
type Record struct {
	Name   string  `yaml:"name"`
	Fields []Param `yaml:"fields,omitempty"`
}

// Param is a named type expression: a record field or a function argument.
type Param struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Enum declares an enum or an error. Variants accepts a single name or a list.
type Enum struct {
	Name     string        `yaml:"name"`
	Variants StringOrArray `yaml:"variants"`
}

// Object declares an opaque object.
type Object struct {
	Name        string       `yaml:"name"`
	Constructor *Constructor `yaml:"constructor,omitempty"`
	Methods     []Function   `yaml:"methods,omitempty"`
}

// Constructor declares how an object is created.
type Constructor struct {
	Arguments []Param `yaml:"arguments,omitempty"`
	Throws    string  `yaml:"throws,omitempty"`
}

// Function declares a free function or a method. Return is empty for functions
// without a result.
type Function struct {
	Name      string  `yaml:"name"`
	Arguments []Param `yaml:"arguments,omitempty"`
	Return    string  `yaml:"return,omitempty"`
	Throws    string  `yaml:"throws,omitempty"`
}

// StringOrArray is a list of strings that may be written as a single scalar.
type StringOrArray []string
