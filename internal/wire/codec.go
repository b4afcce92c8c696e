package wire

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"ffi-bindgen/iface"
	"ffi-bindgen/primitive"
)

// EnumValue is an enum variant given by its discriminant (1-based).
type EnumValue int32

// RecordValue holds record fields by their declared name.
type RecordValue map[string]any

// Codec encodes and decodes Go values by interface type:
//   - scalars use the matching Go type (int8 ... uint64, float32, float64, bool)
//   - String is string, Enum is EnumValue and Record is RecordValue
//   - Optional is nil when absent, otherwise the inner value
//   - Sequence is []any and Map is map[string]any
//
// Because absence is nil, a present value inside Optional<Optional<T>> cannot itself be
// absent. Objects and errors have no buffer encoding.
type Codec struct {
	ci *iface.ComponentInterface
}

// NewCodec creates a Codec resolving records and enums through ci, which may be nil
// when no named types are involved.
func NewCodec(ci *iface.ComponentInterface) *Codec {
	if ci == nil {
		ci = &iface.ComponentInterface{}
	}

	return &Codec{ci: ci}
}

// Encode serializes v as a value of type t.
func (c *Codec) Encode(t iface.Type, v any) ([]byte, error) {
	var buf bytes.Buffer

	if err := c.Write(NewWriter(&buf), t, v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write serializes v as a value of type t into w.
func (c *Codec) Write(w *Writer, t iface.Type, v any) error {
	if _, err := iface.Visit[struct{}](t, encoder{c: c, w: w, v: v}); err != nil {
		return err
	}

	return w.Error()
}

// Decode reads one value of type t and fails if data holds anything after it.
func (c *Codec) Decode(t iface.Type, data []byte) (any, error) {
	r := NewReader(data)

	v, err := c.Read(r, t)
	if err != nil {
		return nil, err
	}

	if err := r.Finish(); err != nil {
		return nil, err
	}

	return v, nil
}

// Read reads one value of type t from r.
func (c *Codec) Read(r *Reader, t iface.Type) (any, error) {
	return iface.Visit[any](t, decoder{c: c, r: r})
}

// Size returns the number of bytes Encode would produce for v.
func (c *Codec) Size(t iface.Type, v any) (int, error) {
	return iface.Visit[int](t, sizer{c: c, v: v})
}

func mismatch(t iface.Type, v any) error {
	name, _ := iface.CanonicalName(t)
	return fmt.Errorf("%w: %s cannot hold %T", ErrTypeMismatch, name, v)
}

func unsupported(t iface.Type) error {
	name, _ := iface.CanonicalName(t)
	return fmt.Errorf("%w: %s", ErrUnsupported, name)
}

func as[T any](t iface.Type, v any) (T, error) {
	res, ok := v.(T)
	if !ok {
		return res, mismatch(t, v)
	}

	return res, nil
}

func (c *Codec) enum(name string) (*iface.EnumDecl, error) {
	decl, ok := c.ci.Enum(name)
	if !ok {
		return nil, fmt.Errorf("%w: enum %q", ErrUnknownDecl, name)
	}

	return decl, nil
}

func (c *Codec) record(name string) (*iface.RecordDecl, error) {
	decl, ok := c.ci.Record(name)
	if !ok {
		return nil, fmt.Errorf("%w: record %q", ErrUnknownDecl, name)
	}

	return decl, nil
}

func checkDiscriminant(decl *iface.EnumDecl, d int32) error {
	if d < 1 || int(d) > len(decl.Variants) {
		return fmt.Errorf("%w: %s has no variant %d", ErrInvalidDiscriminant, decl.Name, d)
	}

	return nil
}

// recordFields checks that rv holds exactly the declared fields.
func recordFields(t iface.Type, decl *iface.RecordDecl, v any) (RecordValue, error) {
	rv, err := as[RecordValue](t, v)
	if err != nil {
		return nil, err
	}

	for _, f := range decl.Fields {
		if _, ok := rv[f.Name]; !ok {
			return nil, fmt.Errorf("%w: record %s is missing field %q", ErrTypeMismatch, decl.Name, f.Name)
		}
	}

	if len(rv) != len(decl.Fields) {
		return nil, fmt.Errorf("%w: record %s has undeclared fields", ErrTypeMismatch, decl.Name)
	}

	return rv, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

type encoder struct {
	c *Codec
	w *Writer
	v any
}

func (e encoder) with(v any) encoder {
	e.v = v
	return e
}

func (e encoder) VisitPrimitive(t iface.Primitive) (struct{}, error) {
	var err error

	switch t.Prim {
	case primitive.KindInt8:
		err = writeAs(e, t, e.w.WriteI8)
	case primitive.KindUint8:
		err = writeAs(e, t, e.w.WriteU8)
	case primitive.KindInt16:
		err = writeAs(e, t, e.w.WriteI16)
	case primitive.KindUint16:
		err = writeAs(e, t, e.w.WriteU16)
	case primitive.KindInt32:
		err = writeAs(e, t, e.w.WriteI32)
	case primitive.KindUint32:
		err = writeAs(e, t, e.w.WriteU32)
	case primitive.KindInt64:
		err = writeAs(e, t, e.w.WriteI64)
	case primitive.KindUint64:
		err = writeAs(e, t, e.w.WriteU64)
	case primitive.KindFloat32:
		err = writeAs(e, t, e.w.WriteF32)
	case primitive.KindFloat64:
		err = writeAs(e, t, e.w.WriteF64)
	case primitive.KindBool:
		err = writeAs(e, t, e.w.WriteBool)
	default:
		err = &iface.InvalidPrimitiveError{Kind: t.Prim}
	}

	return struct{}{}, err
}

func writeAs[T any](e encoder, t iface.Type, write func(T)) error {
	v, err := as[T](t, e.v)
	if err != nil {
		return err
	}

	write(v)

	return nil
}

func (e encoder) VisitString(t iface.String) (struct{}, error) {
	return struct{}{}, writeAs(e, t, e.w.WriteString)
}

func (e encoder) VisitEnum(t iface.Enum) (struct{}, error) {
	decl, err := e.c.enum(t.Name)
	if err != nil {
		return struct{}{}, err
	}

	d, err := as[EnumValue](t, e.v)
	if err != nil {
		return struct{}{}, err
	}

	if err := checkDiscriminant(decl, int32(d)); err != nil {
		return struct{}{}, err
	}

	e.w.WriteI32(int32(d))

	return struct{}{}, nil
}

func (e encoder) VisitObject(t iface.Object) (struct{}, error) {
	return struct{}{}, unsupported(t)
}

func (e encoder) VisitError(t iface.Error) (struct{}, error) {
	return struct{}{}, unsupported(t)
}

func (e encoder) VisitRecord(t iface.Record) (struct{}, error) {
	decl, err := e.c.record(t.Name)
	if err != nil {
		return struct{}{}, err
	}

	rv, err := recordFields(t, decl, e.v)
	if err != nil {
		return struct{}{}, err
	}

	for _, f := range decl.Fields {
		if _, err := iface.Visit[struct{}](f.Type, e.with(rv[f.Name])); err != nil {
			return struct{}{}, fmt.Errorf("%s.%s: %w", decl.Name, f.Name, err)
		}
	}

	return struct{}{}, nil
}

func (e encoder) VisitOptional(t iface.Optional) (struct{}, error) {
	if e.v == nil {
		e.w.WritePresence(false)
		return struct{}{}, nil
	}

	e.w.WritePresence(true)

	return iface.Visit[struct{}](t.Inner, e)
}

func (e encoder) VisitSequence(t iface.Sequence) (struct{}, error) {
	items, err := as[[]any](t, e.v)
	if err != nil {
		return struct{}{}, err
	}

	e.w.WriteLength(len(items))

	for i, item := range items {
		if _, err := iface.Visit[struct{}](t.Inner, e.with(item)); err != nil {
			return struct{}{}, fmt.Errorf("[%d]: %w", i, err)
		}
	}

	return struct{}{}, nil
}

func (e encoder) VisitMap(t iface.Map) (struct{}, error) {
	m, err := as[map[string]any](t, e.v)
	if err != nil {
		return struct{}{}, err
	}

	e.w.WriteLength(len(m))

	for _, k := range sortedKeys(m) {
		e.w.WriteString(k)

		if _, err := iface.Visit[struct{}](t.Inner, e.with(m[k])); err != nil {
			return struct{}{}, fmt.Errorf("[%q]: %w", k, err)
		}
	}

	return struct{}{}, nil
}

type decoder struct {
	c *Codec
	r *Reader
}

func (d decoder) VisitPrimitive(t iface.Primitive) (any, error) {
	switch t.Prim {
	case primitive.KindInt8:
		return d.r.ReadI8()
	case primitive.KindUint8:
		return d.r.ReadU8()
	case primitive.KindInt16:
		return d.r.ReadI16()
	case primitive.KindUint16:
		return d.r.ReadU16()
	case primitive.KindInt32:
		return d.r.ReadI32()
	case primitive.KindUint32:
		return d.r.ReadU32()
	case primitive.KindInt64:
		return d.r.ReadI64()
	case primitive.KindUint64:
		return d.r.ReadU64()
	case primitive.KindFloat32:
		return d.r.ReadF32()
	case primitive.KindFloat64:
		return d.r.ReadF64()
	case primitive.KindBool:
		return d.r.ReadBool()
	default:
		return nil, &iface.InvalidPrimitiveError{Kind: t.Prim}
	}
}

func (d decoder) VisitString(iface.String) (any, error) {
	return d.r.ReadString()
}

func (d decoder) VisitEnum(t iface.Enum) (any, error) {
	decl, err := d.c.enum(t.Name)
	if err != nil {
		return nil, err
	}

	v, err := d.r.ReadI32()
	if err != nil {
		return nil, err
	}

	if err := checkDiscriminant(decl, v); err != nil {
		return nil, err
	}

	return EnumValue(v), nil
}

func (d decoder) VisitObject(t iface.Object) (any, error) {
	return nil, unsupported(t)
}

func (d decoder) VisitError(t iface.Error) (any, error) {
	return nil, unsupported(t)
}

func (d decoder) VisitRecord(t iface.Record) (any, error) {
	decl, err := d.c.record(t.Name)
	if err != nil {
		return nil, err
	}

	rv := make(RecordValue, len(decl.Fields))

	for _, f := range decl.Fields {
		v, err := iface.Visit[any](f.Type, d)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", decl.Name, f.Name, err)
		}

		rv[f.Name] = v
	}

	return rv, nil
}

func (d decoder) VisitOptional(t iface.Optional) (any, error) {
	present, err := d.r.ReadPresence()
	if err != nil || !present {
		return nil, err
	}

	return iface.Visit[any](t.Inner, d)
}

func (d decoder) VisitSequence(t iface.Sequence) (any, error) {
	n, err := d.r.ReadLength()
	if err != nil {
		return nil, err
	}

	items := make([]any, 0, min(n, d.r.Remaining()))

	for i := range n {
		v, err := iface.Visit[any](t.Inner, d)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}

		items = append(items, v)
	}

	return items, nil
}

func (d decoder) VisitMap(t iface.Map) (any, error) {
	n, err := d.r.ReadLength()
	if err != nil {
		return nil, err
	}

	m := make(map[string]any, min(n, d.r.Remaining()))

	for range n {
		k, err := d.r.ReadString()
		if err != nil {
			return nil, err
		}

		if _, ok := m[k]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}

		v, err := iface.Visit[any](t.Inner, d)
		if err != nil {
			return nil, fmt.Errorf("[%q]: %w", k, err)
		}

		m[k] = v
	}

	return m, nil
}

type sizer struct {
	c *Codec
	v any
}

func (s sizer) with(v any) sizer {
	s.v = v
	return s
}

func (s sizer) VisitPrimitive(t iface.Primitive) (int, error) {
	if !t.Prim.IsValid() {
		return 0, &iface.InvalidPrimitiveError{Kind: t.Prim}
	}

	if err := s.encodable(t); err != nil {
		return 0, err
	}

	return t.Prim.Bytes(), nil
}

// encodable runs the encoder over a leaf value so Size rejects what Encode rejects.
func (s sizer) encodable(t iface.Type) error {
	return s.c.Write(NewWriter(io.Discard), t, s.v)
}

func (s sizer) VisitString(t iface.String) (int, error) {
	if err := s.encodable(t); err != nil {
		return 0, err
	}

	v, _ := s.v.(string)

	return StringLengthPrefixSize + len(v), nil
}

func (s sizer) VisitEnum(t iface.Enum) (int, error) {
	if err := s.encodable(t); err != nil {
		return 0, err
	}

	return EnumSize, nil
}

func (s sizer) VisitObject(t iface.Object) (int, error) {
	return 0, unsupported(t)
}

func (s sizer) VisitError(t iface.Error) (int, error) {
	return 0, unsupported(t)
}

func (s sizer) VisitRecord(t iface.Record) (int, error) {
	decl, err := s.c.record(t.Name)
	if err != nil {
		return 0, err
	}

	rv, err := recordFields(t, decl, s.v)
	if err != nil {
		return 0, err
	}

	total := 0

	for _, f := range decl.Fields {
		n, err := iface.Visit[int](f.Type, s.with(rv[f.Name]))
		if err != nil {
			return 0, fmt.Errorf("%s.%s: %w", decl.Name, f.Name, err)
		}

		total += n
	}

	return total, nil
}

func (s sizer) VisitOptional(t iface.Optional) (int, error) {
	if s.v == nil {
		return PresenceTagSize, nil
	}

	n, err := iface.Visit[int](t.Inner, s)
	if err != nil {
		return 0, err
	}

	return PresenceTagSize + n, nil
}

func (s sizer) VisitSequence(t iface.Sequence) (int, error) {
	items, err := as[[]any](t, s.v)
	if err != nil {
		return 0, err
	}

	total := CountPrefixSize

	for _, item := range items {
		n, err := iface.Visit[int](t.Inner, s.with(item))
		if err != nil {
			return 0, err
		}

		total += n
	}

	return total, nil
}

func (s sizer) VisitMap(t iface.Map) (int, error) {
	m, err := as[map[string]any](t, s.v)
	if err != nil {
		return 0, err
	}

	total := CountPrefixSize

	for k, v := range m {
		n, err := iface.Visit[int](t.Inner, s.with(v))
		if err != nil {
			return 0, err
		}

		total += StringLengthPrefixSize + len(k) + n
	}

	return total, nil
}
