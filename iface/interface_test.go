package iface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rondpoint() *ComponentInterface {
	return &ComponentInterface{
		Namespace: "rondpoint",
		Records: []RecordDecl{
			{Name: "dictionnaire", Fields: []Field{
				{Name: "un", Type: Enum{Name: "enumeration"}},
				{Name: "deux", Type: Boolean},
			}},
			{Name: "line", Fields: []Field{
				{Name: "start", Type: Record{Name: "point"}},
				{Name: "end", Type: Optional{Inner: Record{Name: "point"}}},
			}},
			{Name: "point", Fields: []Field{
				{Name: "x", Type: Float64},
				{Name: "y", Type: Float64},
			}},
		},
		Enums:  []EnumDecl{{Name: "enumeration", Variants: []string{"un", "deux", "trois"}}},
		Errors: []ErrorDecl{{Name: "arithmetic_error", Variants: []string{"integer_overflow"}}},
		Objects: []ObjectDecl{{
			Name:        "counter",
			Constructor: &ConstructorDecl{Arguments: []Argument{{Name: "start", Type: UInt32}}},
			Methods:     []FunctionDecl{{Name: "increment", Return: UInt32}},
		}},
		Functions: []FunctionDecl{
			{
				Name:      "copie_dictionnaire",
				Arguments: []Argument{{Name: "d", Type: Record{Name: "dictionnaire"}}},
				Return:    Record{Name: "dictionnaire"},
			},
			{
				Name:      "checked_add",
				Arguments: []Argument{{Name: "a", Type: UInt64}, {Name: "b", Type: UInt64}},
				Return:    UInt64,
				Throws:    "arithmetic_error",
			},
			{
				Name:      "names",
				Arguments: []Argument{{Name: "values", Type: Sequence{Inner: Text}}},
				Return:    Map{Inner: Int32},
			},
		},
	}
}

func TestLookups(t *testing.T) {
	t.Parallel()

	ci := rondpoint()

	r, ok := ci.Record("point")
	require.True(t, ok)
	assert.Len(t, r.Fields, 2)

	_, ok = ci.Record("enumeration")
	assert.False(t, ok)

	e, ok := ci.Enum("enumeration")
	require.True(t, ok)
	assert.Equal(t, int32(1), e.Discriminant("un"))
	assert.Equal(t, int32(3), e.Discriminant("trois"))
	assert.Equal(t, int32(0), e.Discriminant("quatre"))

	_, ok = ci.Error("arithmetic_error")
	assert.True(t, ok)

	_, ok = ci.Object("counter")
	assert.True(t, ok)

	f, ok := ci.Function("checked_add")
	require.True(t, ok)
	assert.Equal(t, "arithmetic_error", f.Throws)
}

func TestIterTypes(t *testing.T) {
	t.Parallel()

	var names []string
	for _, typ := range rondpoint().IterTypes() {
		names = append(names, MustCanonicalName(typ))
	}

	assert.Equal(t, []string{
		"Enum_enumeration",
		"Boolean",
		"Record_dictionnaire",
		"Float64",
		"Record_point",
		"Optional_Record_point",
		"Record_line",
		"UInt64",
		"Error_arithmetic_error",
		"String",
		"Sequence_String",
		"Int32",
		"Map_Int32",
		"Object_counter",
		"UInt32",
	}, names)
}

func TestIterTypesInnerBeforeOuter(t *testing.T) {
	t.Parallel()

	ci := &ComponentInterface{
		Namespace: "ns",
		Functions: []FunctionDecl{{
			Name:   "f",
			Return: Map{Inner: Sequence{Inner: Optional{Inner: Int8}}},
		}},
	}

	pos := map[string]int{}
	for i, typ := range ci.IterTypes() {
		pos[MustCanonicalName(typ)] = i
	}

	assert.Less(t, pos["Int8"], pos["Optional_Int8"])
	assert.Less(t, pos["Optional_Int8"], pos["Sequence_Optional_Int8"])
	assert.Less(t, pos["Sequence_Optional_Int8"], pos["Map_Sequence_Optional_Int8"])
	assert.Less(t, pos["String"], pos["Map_Sequence_Optional_Int8"])
	assert.Len(t, pos, 5)
}

func TestFFIFunctions(t *testing.T) {
	t.Parallel()

	fns, err := rondpoint().FFIFunctions()
	require.NoError(t, err)

	byName := map[string]FFIFunction{}
	for _, fn := range fns {
		byName[fn.Name] = fn
	}

	assert.Len(t, fns, 11)

	add := byName["rondpoint_checked_add"]
	assert.Equal(t, []FFIArgument{
		{Name: "a", Type: FFIUInt64},
		{Name: "b", Type: FFIUInt64},
		{Name: "out_err", Type: FFIRustError},
	}, add.Arguments)
	assert.Equal(t, FFIUInt64, add.Return)

	copie := byName["rondpoint_copie_dictionnaire"]
	assert.Equal(t, []FFIArgument{{Name: "d", Type: FFIRustBuffer}}, copie.Arguments)
	assert.Equal(t, FFIRustBuffer, copie.Return)

	ctor := byName["rondpoint_counter_new"]
	assert.Equal(t, []FFIArgument{{Name: "start", Type: FFIUInt32}}, ctor.Arguments)
	assert.Equal(t, FFIUInt64, ctor.Return)

	inc := byName["rondpoint_counter_increment"]
	assert.Equal(t, []FFIArgument{{Name: "handle", Type: FFIUInt64}}, inc.Arguments)
	assert.Equal(t, FFIUInt32, inc.Return)

	free := byName["ffi_rondpoint_counter_object_free"]
	assert.False(t, free.HasReturn())

	for _, name := range []string{
		"ffi_rondpoint_rustbuffer_alloc",
		"ffi_rondpoint_rustbuffer_free",
		"ffi_rondpoint_rustbuffer_reserve",
		"ffi_rondpoint_string_alloc_from",
		"ffi_rondpoint_string_free",
	} {
		fn, ok := byName[name]
		require.True(t, ok, name)
		assert.Equal(t, FFIRustError, fn.Arguments[len(fn.Arguments)-1].Type, name)
	}
}

func TestFFIFunctionsRejectsNilArgument(t *testing.T) {
	t.Parallel()

	ci := &ComponentInterface{
		Namespace: "ns",
		Functions: []FunctionDecl{{Name: "f", Arguments: []Argument{{Name: "x"}}}},
	}

	_, err := ci.FFIFunctions()
	require.ErrorIs(t, err, ErrNilType)
	assert.Contains(t, err.Error(), "ns_f: argument x")
}
