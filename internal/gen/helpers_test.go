package gen

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffi-bindgen/iface"
	"ffi-bindgen/internal/wire"
	"ffi-bindgen/primitive"
)

func pointInterface() *iface.ComponentInterface {
	return &iface.ComponentInterface{
		Namespace: "geometry",
		Records: []iface.RecordDecl{
			{Name: "point", Fields: []iface.Field{
				{Name: "x", Type: iface.Float64},
				{Name: "label", Type: iface.Optional{Inner: iface.Text}},
				{Name: "color", Type: iface.Enum{Name: "color"}},
			}},
			{Name: "empty"},
		},
		Enums: []iface.EnumDecl{{Name: "color", Variants: []string{"red", "green"}}},
		Functions: []iface.FunctionDecl{
			{
				Name:      "f",
				Arguments: []iface.Argument{{Name: "a", Type: iface.Optional{Inner: iface.Text}}},
				Return:    iface.Sequence{Inner: iface.Optional{Inner: iface.Record{Name: "point"}}},
			},
			{
				Name:      "g",
				Arguments: []iface.Argument{{Name: "b", Type: iface.Optional{Inner: iface.Text}}},
			},
		},
	}
}

func lines(l ...string) string {
	return strings.Join(l, "\n")
}

func render(t *testing.T, typ iface.Type) *HelperSet {
	t.Helper()

	set, err := renderHelpers(pointInterface(), typ, "    ")
	require.NoError(t, err)

	return set
}

func TestOptionalHelpers(t *testing.T) {
	t.Parallel()

	set := render(t, iface.Optional{Inner: iface.Int32})
	assert.Equal(t, "Optional_Int32", set.Canonical)
	assert.Equal(t, "OptionalInt32", set.Name)

	assert.Equal(t, lines(
		"@staticmethod",
		"def calculateWriteSizeOfOptionalInt32(v):",
		"    if v is None:",
		"        return 1",
		"    return 1 + 4",
	), set.CalculateWriteSize)

	assert.Equal(t, lines(
		"@staticmethod",
		"def allocFromOptionalInt32(v):",
		"    with RustBuffer.allocWithBuilder(RustBuffer.calculateWriteSizeOfOptionalInt32(v)) as builder:",
		"        builder.writeOptionalInt32(v)",
		"        return builder.finalize()",
	), set.AllocFrom)

	assert.Equal(t, lines(
		"def consumeIntoOptionalInt32(self):",
		"    with self.consumeWithStream() as stream:",
		"        return stream.readOptionalInt32()",
	), set.ConsumeInto)

	assert.Equal(t, lines(
		"def writeOptionalInt32(self, v):",
		"    if v is None:",
		"        self.writeU8(0)",
		"    else:",
		"        self.writeU8(1)",
		"        self.writeI32(v)",
	), set.Write)

	assert.Equal(t, lines(
		"def readOptionalInt32(self):",
		"    tag = self.readU8()",
		"    if tag == 0:",
		"        return None",
		"    if tag == 1:",
		"        return int(self.readI32())",
		`    raise ValueError("Unexpected flag byte for OptionalInt32")`,
	), set.Read)
}

func TestSequenceHelpers(t *testing.T) {
	t.Parallel()

	set := render(t, iface.Sequence{Inner: iface.Text})

	assert.Equal(t, lines(
		"@staticmethod",
		"def calculateWriteSizeOfSequenceString(v):",
		"    return 4 + sum(4 + len(_item0.encode('utf-8')) for _item0 in v)",
	), set.CalculateWriteSize)

	assert.Equal(t, lines(
		"def writeSequenceString(self, v):",
		"    self.writeI32(len(v))",
		"    for _item0 in v:",
		"        self.writeString(_item0)",
	), set.Write)

	assert.Equal(t, lines(
		"def readSequenceString(self):",
		"    count = self.readI32()",
		"    if count < 0:",
		`        raise ValueError("Unexpected negative sequence length")`,
		"    return [self.readString() for _item0 in range(count)]",
	), set.Read)
}

func TestSequenceOfOptionalHelpers(t *testing.T) {
	t.Parallel()

	set := render(t, iface.Sequence{Inner: iface.Optional{Inner: iface.Int32}})

	assert.Equal(t, lines(
		"@staticmethod",
		"def calculateWriteSizeOfSequenceOptionalInt32(v):",
		"    return 4 + sum(RustBuffer.calculateWriteSizeOfOptionalInt32(_item0) for _item0 in v)",
	), set.CalculateWriteSize)

	assert.Equal(t, lines(
		"def writeSequenceOptionalInt32(self, v):",
		"    self.writeI32(len(v))",
		"    for _item0 in v:",
		"        self.writeOptionalInt32(_item0)",
	), set.Write)
}

func TestMapHelpers(t *testing.T) {
	t.Parallel()

	set := render(t, iface.Map{Inner: iface.Boolean})

	assert.Equal(t, lines(
		"@staticmethod",
		"def calculateWriteSizeOfMapBoolean(v):",
		"    return 4 + sum(4 + len(_key0.encode('utf-8')) + 1 for (_key0, _value0) in v.items())",
	), set.CalculateWriteSize)

	assert.Equal(t, lines(
		"def writeMapBoolean(self, v):",
		"    self.writeI32(len(v))",
		"    for (_key0, _value0) in sorted(v.items()):",
		"        self.writeString(_key0)",
		"        self.writeI8((1 if _value0 else 0))",
	), set.Write)

	assert.Equal(t, lines(
		"def readMapBoolean(self):",
		"    count = self.readI32()",
		"    if count < 0:",
		`        raise ValueError("Unexpected negative map size")`,
		"    items = {}",
		"    for _item0 in range(count):",
		"        key = self.readString()",
		"        items[key] = (True if self.readI8() else False)",
		"    return items",
	), set.Read)
}

func TestRecordHelpers(t *testing.T) {
	t.Parallel()

	set := render(t, iface.Record{Name: "point"})
	assert.Equal(t, "RecordPoint", set.Name)

	assert.Equal(t, lines(
		"@staticmethod",
		"def calculateWriteSizeOfRecordPoint(v):",
		"    return 8 + RustBuffer.calculateWriteSizeOfOptionalString(v.label) + 4",
	), set.CalculateWriteSize)

	assert.Equal(t, lines(
		"def writeRecordPoint(self, v):",
		"    self.writeDouble(v.x)",
		"    self.writeOptionalString(v.label)",
		"    self.writeI32(v.color.value)",
	), set.Write)

	assert.Equal(t, lines(
		"def readRecordPoint(self):",
		"    return Point(",
		"        x=float(self.readDouble()),",
		"        label=self.readOptionalString(),",
		"        color=Color(self.readI32()),",
		"    )",
	), set.Read)
}

func TestEmptyRecordHelpers(t *testing.T) {
	t.Parallel()

	set := render(t, iface.Record{Name: "empty"})

	assert.Equal(t, lines(
		"@staticmethod",
		"def calculateWriteSizeOfRecordEmpty(v):",
		"    return 0",
	), set.CalculateWriteSize)
	assert.Equal(t, lines("def writeRecordEmpty(self, v):", "    pass"), set.Write)
	assert.Equal(t, lines("def readRecordEmpty(self):", "    return Empty()"), set.Read)
}

func TestHelpersIndent(t *testing.T) {
	t.Parallel()

	set, err := renderHelpers(pointInterface(), iface.Optional{Inner: iface.Text}, "\t")
	require.NoError(t, err)
	assert.Contains(t, set.Write, "\n\t\tself.writeString(v)")
}

func TestHelpersRejectUnsupportedElements(t *testing.T) {
	t.Parallel()

	for _, typ := range []iface.Type{
		iface.Sequence{Inner: iface.Object{Name: "counter"}},
		iface.Optional{Inner: iface.Error{Name: "oops"}},
		iface.Map{Inner: iface.Object{Name: "counter"}},
	} {
		_, err := renderHelpers(pointInterface(), typ, "    ")
		require.ErrorIs(t, err, ErrUnsupported, iface.MustCanonicalName(typ))
	}

	_, err := renderHelpers(pointInterface(), iface.Record{Name: "missing"}, "    ")
	require.Error(t, err)

	_, err = renderHelpers(pointInterface(), iface.Int32, "    ")
	require.Error(t, err)
}

// The scalar widths emitted into size expressions are the widths the reference codec
// writes.
func TestScalarSizesMatchWire(t *testing.T) {
	t.Parallel()

	zero := map[primitive.KindEnum]any{
		primitive.KindInt8:    int8(0),
		primitive.KindUint8:   uint8(0),
		primitive.KindInt16:   int16(0),
		primitive.KindUint16:  uint16(0),
		primitive.KindInt32:   int32(0),
		primitive.KindUint32:  uint32(0),
		primitive.KindInt64:   int64(0),
		primitive.KindUint64:  uint64(0),
		primitive.KindFloat32: float32(0),
		primitive.KindFloat64: float64(0),
		primitive.KindBool:    false,
	}

	codec := wire.NewCodec(nil)

	for _, k := range primitive.All() {
		typ := iface.Primitive{Prim: k}

		data, err := codec.Encode(typ, zero[k])
		require.NoError(t, err, k.String())

		size, err := WriteSize("x", typ)
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(len(data)), size, k.String())
	}

	data, err := wire.NewCodec(pointInterface()).Encode(iface.Enum{Name: "color"}, wire.EnumValue(1))
	require.NoError(t, err)

	size, err := WriteSize("x", iface.Enum{Name: "color"})
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(len(data)), size)
}
