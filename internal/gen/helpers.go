package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"ffi-bindgen/iface"
	"ffi-bindgen/internal/naming"
	"ffi-bindgen/internal/wire"
)

// HelperSet holds the Python routines shared by every use of one composite type.
// Canonical is the key the registry deduplicates on; Name suffixes every routine, e.g.
// "SequenceRecordPoint".
type HelperSet struct {
	Canonical string     `yaml:"canonical"`
	Name      string     `yaml:"name"`
	Type      iface.Type `yaml:"-"`

	CalculateWriteSize string `yaml:"calculate_write_size"` // RustBuffer static method
	AllocFrom          string `yaml:"alloc_from"`           // RustBuffer static method
	ConsumeInto        string `yaml:"consume_into"`         // RustBuffer method
	Write              string `yaml:"write"`                // RustBufferBuilder method
	Read               string `yaml:"read"`                 // RustBufferStream method
}

type helperData struct {
	I       string
	Routine string
	Name    string

	SizeRoutine  string
	WriteRoutine string
	ReadRoutine  string

	TagSize   int
	CountSize int
	Absent    byte
	Present   byte

	Item  string
	Key   string
	Value string

	InnerSize  string
	InnerWrite string
	InnerRead  string
	KeySize    string
	KeyWrite   string

	Class  string
	Fields []fieldData
}

type fieldData struct {
	Attr  string
	Size  string
	Write string
	Read  string
}

// renderHelpers builds the HelperSet of composite type t. Inner helpers are referenced
// by name only, so it does not matter whether they are rendered yet.
func renderHelpers(ci *iface.ComponentInterface, t iface.Type, indent string) (*HelperSet, error) {
	canonical, err := iface.CanonicalName(t)
	if err != nil {
		return nil, err
	}

	name := naming.ClassName(canonical)

	data := helperData{
		I:            indent,
		Name:         name,
		SizeRoutine:  calculateWriteSizeName(name),
		WriteRoutine: writeName(name),
		ReadRoutine:  readName(name),
		TagSize:      wire.PresenceTagSize,
		CountSize:    wire.CountPrefixSize,
		Absent:       wire.TagAbsent,
		Present:      wire.TagPresent,
		Item:         binder("item", 0),
		Key:          binder("key", 0),
		Value:        binder("value", 0),
	}

	var kind string

	switch t := t.(type) {
	case iface.Optional:
		kind = "optional"
		err = data.setInner("v", t.Inner)
	case iface.Sequence:
		kind = "sequence"
		err = data.setInner(data.Item, t.Inner)
	case iface.Map:
		kind = "map"
		if err = data.setInner(data.Value, t.Inner); err == nil {
			data.KeySize, _ = WriteSize(data.Key, iface.Text)
			data.KeyWrite, _ = writeStmt(data.Key, iface.Text)
		}
	case iface.Record:
		kind = "record"
		err = data.setRecord(ci, t)
	default:
		return nil, fmt.Errorf("gen: %s has no buffer helpers", canonical)
	}

	if err != nil {
		return nil, fmt.Errorf("helpers for %s: %w", canonical, err)
	}

	set := &HelperSet{Canonical: canonical, Name: name, Type: t}

	routines := []struct {
		dst     *string
		tmpl    string
		routine string
	}{
		{&set.CalculateWriteSize, "calculate_write_size_" + kind, data.SizeRoutine},
		{&set.AllocFrom, "alloc_from", allocFromName(name)},
		{&set.ConsumeInto, "consume_into", consumeIntoName(name)},
		{&set.Write, "write_" + kind, data.WriteRoutine},
		{&set.Read, "read_" + kind, data.ReadRoutine},
	}

	for _, r := range routines {
		data.Routine = r.routine

		var buf bytes.Buffer
		if err := helperTemplates.ExecuteTemplate(&buf, r.tmpl, &data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", r.tmpl, err)
		}

		*r.dst = strings.TrimSuffix(buf.String(), "\n")
	}

	return set, nil
}

// setInner fills the size, write and read fragments of a container's element, bound
// to expr.
func (d *helperData) setInner(expr string, inner iface.Type) error {
	var err error

	if d.InnerSize, err = WriteSize(expr, inner); err != nil {
		return err
	}

	if d.InnerWrite, err = writeStmt(expr, inner); err != nil {
		return err
	}

	d.InnerRead, err = readExpr(inner)

	return err
}

func (d *helperData) setRecord(ci *iface.ComponentInterface, t iface.Record) error {
	decl, ok := ci.Record(t.Name)
	if !ok {
		return fmt.Errorf("record %s is not declared", strconv.Quote(t.Name))
	}

	d.Class = naming.ClassName(decl.Name)

	for _, f := range decl.Fields {
		attr := naming.VarName(f.Name)
		fd := fieldData{Attr: attr}

		var err error

		if fd.Size, err = WriteSize("v."+attr, f.Type); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}

		if fd.Write, err = writeStmt("v."+attr, f.Type); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}

		if fd.Read, err = readExpr(f.Type); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}

		d.Fields = append(d.Fields, fd)
	}

	return nil
}
