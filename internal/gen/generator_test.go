package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ffi-bindgen/iface"
)

func rondpoint() *iface.ComponentInterface {
	return &iface.ComponentInterface{
		Namespace: "rondpoint",
		Records: []iface.RecordDecl{
			{Name: "dictionnaire", Fields: []iface.Field{
				{Name: "un", Type: iface.Enum{Name: "enumeration"}},
				{Name: "deux", Type: iface.Boolean},
			}},
		},
		Enums:  []iface.EnumDecl{{Name: "enumeration", Variants: []string{"un", "deux", "trois"}}},
		Errors: []iface.ErrorDecl{{Name: "arithmetic_error", Variants: []string{"integer_overflow"}}},
		Objects: []iface.ObjectDecl{{
			Name:        "counter",
			Constructor: &iface.ConstructorDecl{Arguments: []iface.Argument{{Name: "start", Type: iface.UInt32}}},
			Methods:     []iface.FunctionDecl{{Name: "increment", Return: iface.UInt32}},
		}},
		Functions: []iface.FunctionDecl{
			{
				Name:      "copie_dictionnaire",
				Arguments: []iface.Argument{{Name: "d", Type: iface.Record{Name: "dictionnaire"}}},
				Return:    iface.Record{Name: "dictionnaire"},
			},
			{
				Name:      "checked_add",
				Arguments: []iface.Argument{{Name: "a", Type: iface.UInt64}, {Name: "b", Type: iface.UInt64}},
				Return:    iface.UInt64,
				Throws:    "arithmetic_error",
			},
			{
				Name:      "names",
				Arguments: []iface.Argument{{Name: "values", Type: iface.Sequence{Inner: iface.Text}}},
				Return:    iface.Map{Inner: iface.Int32},
			},
		},
	}
}

func generate(t *testing.T, ci *iface.ComponentInterface) *Bundle {
	t.Helper()

	b, err := NewGenerator(DefaultGeneratorConfig()).Generate(ci)
	require.NoError(t, err)

	return b
}

func TestGenerator_Generate_Functions(t *testing.T) {
	t.Parallel()

	b := generate(t, rondpoint())
	require.Len(t, b.Functions, 3)

	add := b.Functions[1]
	assert.Equal(t, "checked_add", add.FuncName)
	assert.Equal(t, "rondpoint_checked_add", add.FFIName)
	assert.Equal(t, "ArithmeticError", add.Throws)
	require.Len(t, add.Arguments, 2)
	assert.Equal(t, ArgumentFragment{
		Name:    "a",
		VarName: "a",
		Coerce:  "int(a)",
		Lower:   "a",
		FFIType: "ctypes.c_uint64",
	}, add.Arguments[0])
	assert.Equal(t, &ReturnFragment{
		Type:    "UInt64",
		Lift:    "int(_retval)",
		FFIType: "ctypes.c_uint64",
	}, add.Return)

	copie := b.Functions[0]
	assert.Equal(t, "RustBuffer.allocFromRecordDictionnaire(d)", copie.Arguments[0].Lower)
	assert.Equal(t, "_retval.consumeIntoRecordDictionnaire()", copie.Return.Lift)
	assert.Equal(t, "RustBuffer", copie.Return.FFIType)
	assert.Empty(t, copie.Throws)

	names := b.Functions[2]
	assert.Equal(t, "RustBuffer.allocFromSequenceString(values)", names.Arguments[0].Lower)
	assert.Equal(t, "Map_Int32", names.Return.Type)
}

func TestGenerator_Generate_FFIFunctions(t *testing.T) {
	t.Parallel()

	b := generate(t, rondpoint())

	byName := map[string]FFIFunctionDecl{}
	for _, fn := range b.FFIFunctions {
		byName[fn.Name] = fn
	}

	add, ok := byName["rondpoint_checked_add"]
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "out_err"}, add.ArgNames)
	assert.Equal(t, []string{"ctypes.c_uint64", "ctypes.c_uint64", "POINTER(RustError)"}, add.ArgTypes)
	assert.Equal(t, "ctypes.c_uint64", add.RestType)

	free, ok := byName["ffi_rondpoint_counter_object_free"]
	require.True(t, ok)
	assert.Equal(t, "None", free.RestType)

	alloc, ok := byName["ffi_rondpoint_rustbuffer_alloc"]
	require.True(t, ok)
	assert.Equal(t, "RustBuffer", alloc.RestType)

	strAlloc, ok := byName["ffi_rondpoint_string_alloc_from"]
	require.True(t, ok)
	assert.Equal(t, "ctypes.c_char_p", strAlloc.ArgTypes[0])
}

func TestGenerator_Generate_Declarations(t *testing.T) {
	t.Parallel()

	b := generate(t, rondpoint())

	require.Len(t, b.Records, 1)
	assert.Equal(t, "Dictionnaire", b.Records[0].ClassName)
	assert.Equal(t, []FieldFragment{
		{Name: "un", VarName: "un", Type: "Enum_enumeration"},
		{Name: "deux", VarName: "deux", Type: "Boolean"},
	}, b.Records[0].Fields)

	require.Len(t, b.Enums, 1)
	assert.Equal(t, "Enumeration", b.Enums[0].ClassName)
	assert.Equal(t, VariantFragment{Name: "trois", Const: "TROIS", Value: 3}, b.Enums[0].Variants[2])

	require.Len(t, b.Errors, 1)
	assert.Equal(t, "ArithmeticError", b.Errors[0].ClassName)
	assert.Equal(t, "INTEGER_OVERFLOW", b.Errors[0].Variants[0].Const)

	var helpers []string
	for _, h := range b.Helpers {
		helpers = append(helpers, h.Canonical)
	}

	assert.Equal(t, []string{"Record_dictionnaire", "Sequence_String", "Map_Int32"}, helpers)
}

func TestGenerator_Generate_Objects(t *testing.T) {
	t.Parallel()

	b := generate(t, rondpoint())
	require.Len(t, b.Objects, 1)

	obj := b.Objects[0]
	assert.Equal(t, "Counter", obj.ClassName)
	assert.Equal(t, "ffi_rondpoint_counter_object_free", obj.FreeFFIName)

	require.NotNil(t, obj.Constructor)
	assert.Equal(t, "__init__", obj.Constructor.FuncName)
	assert.Equal(t, "rondpoint_counter_new", obj.Constructor.FFIName)
	assert.Equal(t, "int(start)", obj.Constructor.Arguments[0].Coerce)

	require.Len(t, obj.Methods, 1)
	assert.Equal(t, "rondpoint_counter_increment", obj.Methods[0].FFIName)
	assert.Equal(t, "int(_retval)", obj.Methods[0].Return.Lift)
}

func TestGenerator_Generate_Config(t *testing.T) {
	t.Parallel()

	cfg := DefaultGeneratorConfig()
	cfg.Namespace = "other"
	cfg.ReturnVar = "rv"
	cfg.Indent = "\t"

	b, err := NewGenerator(cfg).Generate(rondpoint())
	require.NoError(t, err)

	assert.Equal(t, "other", b.Namespace)
	assert.Equal(t, "other_checked_add", b.Functions[1].FFIName)
	assert.Equal(t, "int(rv)", b.Functions[1].Return.Lift)
	assert.Contains(t, b.Helpers[0].Write, "\n\tself.writeI32(v.un.value)")
}

func TestGenerator_Generate_Invalid(t *testing.T) {
	t.Parallel()

	ci := rondpoint()
	ci.Functions[0].Return = iface.Record{Name: "missing"}

	b, err := NewGenerator(DefaultGeneratorConfig()).Generate(ci)
	require.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "invalid interface")
	assert.Contains(t, err.Error(), `"missing" is not declared`)
}

func TestGenerator_Generate_SharedHelperName(t *testing.T) {
	t.Parallel()

	ci := &iface.ComponentInterface{
		Namespace: "geometry",
		Records: []iface.RecordDecl{
			{Name: "point", Fields: []iface.Field{{Name: "x", Type: iface.Int32}}},
			{Name: "Point", Fields: []iface.Field{{Name: "y", Type: iface.Text}}},
		},
		Functions: []iface.FunctionDecl{{
			Name:      "both",
			Arguments: []iface.Argument{{Name: "a", Type: iface.Record{Name: "point"}}},
			Return:    iface.Record{Name: "Point"},
		}},
	}

	b, err := NewGenerator(DefaultGeneratorConfig()).Generate(ci)
	require.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), `"point" and "Point" both become class Point`)
}

func TestGenerator_Generate_Unsupported(t *testing.T) {
	t.Parallel()

	ci := rondpoint()
	ci.Objects[0].Methods = append(ci.Objects[0].Methods, iface.FunctionDecl{
		Name:   "clone",
		Return: iface.Object{Name: "counter"},
	})

	b, err := NewGenerator(DefaultGeneratorConfig()).Generate(ci)
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "method clone")
}

func TestBundle_Encode(t *testing.T) {
	t.Parallel()

	b := generate(t, rondpoint())

	var buf bytes.Buffer
	require.NoError(t, b.Encode(&buf))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "rondpoint", decoded["namespace"])
	assert.Contains(t, buf.String(), "writeSequenceString")
	assert.Contains(t, buf.String(), "canonical: Map_Int32")
}

func TestBundle_WriteFile(t *testing.T) {
	t.Parallel()

	b := generate(t, rondpoint())
	path := filepath.Join(t.TempDir(), "out", "bundle.yaml")

	require.NoError(t, b.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ffi_functions:")
}
