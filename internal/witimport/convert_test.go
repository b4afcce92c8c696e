package witimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bytecodealliance.org/wit"

	"ffi-bindgen/iface"
)

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func anon(kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Kind: kind}
}

func TestPrimitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   wit.Type
		want iface.Type
	}{
		{wit.Bool{}, iface.Boolean},
		{wit.S8{}, iface.Int8},
		{wit.U8{}, iface.UInt8},
		{wit.S16{}, iface.Int16},
		{wit.U16{}, iface.UInt16},
		{wit.S32{}, iface.Int32},
		{wit.U32{}, iface.UInt32},
		{wit.S64{}, iface.Int64},
		{wit.U64{}, iface.UInt64},
		{wit.F32{}, iface.Float32},
		{wit.F64{}, iface.Float64},
		{wit.String{}, iface.Text},
	}

	for _, tt := range tests {
		got, ok := Primitive(tt.in)
		require.True(t, ok, "%T", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, ok := Primitive(wit.Char{})
	assert.False(t, ok)
}

func TestConvertTypeDefs(t *testing.T) {
	t.Parallel()

	color := named("color", &wit.Enum{Cases: []wit.EnumCase{{Name: "red"}, {Name: "dark-green"}}})
	point := named("point", &wit.Record{Fields: []wit.Field{
		{Name: "x", Type: wit.F64{}},
		{Name: "y", Type: wit.F64{}},
	}})
	counter := named("counter", &wit.Resource{})
	mathError := named("math-error", &wit.Variant{Cases: []wit.Case{{Name: "overflow"}, {Name: "divide-by-zero"}}})

	shape := named("shape", &wit.Record{Fields: []wit.Field{
		{Name: "fill-color", Type: color},
		{Name: "points", Type: anon(&wit.List{Type: point})},
		{Name: "label", Type: anon(&wit.Option{Type: wit.String{}})},
		{Name: "tags", Type: anon(&wit.List{Type: anon(&wit.Tuple{Types: []wit.Type{wit.String{}, wit.U32{}}})})},
		{Name: "owner", Type: anon(&wit.Borrow{Type: counter})},
	}})
	alias := named("coordinates", &wit.List{Type: point})

	ci, err := ConvertTypeDefs([]*wit.TypeDef{color, point, counter, mathError, shape, alias}, "shapes")
	require.NoError(t, err)

	assert.Equal(t, "shapes", ci.Namespace)
	assert.Equal(t, []iface.EnumDecl{{Name: "color", Variants: []string{"red", "dark_green"}}}, ci.Enums)
	assert.Equal(t, []iface.ErrorDecl{{Name: "math_error", Variants: []string{"overflow", "divide_by_zero"}}}, ci.Errors)
	assert.Equal(t, []iface.ObjectDecl{{Name: "counter"}}, ci.Objects)

	require.Len(t, ci.Records, 2)
	assert.Equal(t, iface.RecordDecl{Name: "shape", Fields: []iface.Field{
		{Name: "fill_color", Type: iface.Enum{Name: "color"}},
		{Name: "points", Type: iface.Sequence{Inner: iface.Record{Name: "point"}}},
		{Name: "label", Type: iface.Optional{Inner: iface.Text}},
		{Name: "tags", Type: iface.Map{Inner: iface.UInt32}},
		{Name: "owner", Type: iface.Object{Name: "counter"}},
	}}, ci.Records[1])

	assert.False(t, ci.Validate().HasErrors())
}

func TestTypeOfAlias(t *testing.T) {
	t.Parallel()

	point := named("point", &wit.Record{})
	alias := named("location", point)

	got, err := TypeOf(anon(&wit.Option{Type: alias}))
	require.NoError(t, err)
	assert.Equal(t, iface.Optional{Inner: iface.Record{Name: "point"}}, got)

	got, err = TypeOf(named("size", wit.U64{}))
	require.NoError(t, err)
	assert.Equal(t, iface.UInt64, got)
}

func TestConvertUnsupported(t *testing.T) {
	t.Parallel()

	payload := named("shape", &wit.Variant{Cases: []wit.Case{{Name: "circle", Type: wit.F32{}}}})
	withChar := named("glyph", &wit.Record{Fields: []wit.Field{{Name: "c", Type: wit.Char{}}}})
	withTuple := named("pair", &wit.Record{Fields: []wit.Field{
		{Name: "p", Type: anon(&wit.Tuple{Types: []wit.Type{wit.U8{}, wit.U8{}}})},
	}})

	_, err := ConvertTypeDefs([]*wit.TypeDef{payload, withChar, withTuple}, "ns")
	require.ErrorIs(t, err, ErrUnsupported)
	assert.NotContains(t, err.Error(), "shape:")
	assert.Contains(t, err.Error(), "glyph: field c")
	assert.Contains(t, err.Error(), "pair: field p")
}

func TestConvertSkipsPayloadVariants(t *testing.T) {
	t.Parallel()

	payload := named("shape", &wit.Variant{Cases: []wit.Case{{Name: "circle", Type: wit.F32{}}}})
	flat := named("math-error", &wit.Variant{Cases: []wit.Case{{Name: "overflow"}}})

	ci, err := ConvertTypeDefs([]*wit.TypeDef{payload, flat}, "ns")
	require.NoError(t, err)
	assert.Equal(t, []iface.ErrorDecl{{Name: "math_error", Variants: []string{"overflow"}}}, ci.Errors)

	user := named("drawing", &wit.Record{Fields: []wit.Field{{Name: "outline", Type: payload}}})

	_, err = ConvertTypeDefs([]*wit.TypeDef{payload, user}, "ns")
	require.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "drawing: field outline")
	assert.Contains(t, err.Error(), "circle carries a payload")
}
