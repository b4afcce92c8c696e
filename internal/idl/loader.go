package idl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"ffi-bindgen/iface"
)

// CurrentVersion is the description format version written by Marshal.
const CurrentVersion = "1"

const filePerm = 0o644

// LoadFile loads and parses a YAML interface description from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&f)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse interface YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Enums {
		if f.Enums[i].Variants == nil {
			f.Enums[i].Variants = StringOrArray{}
		}
	}

	for i := range f.Errors {
		if f.Errors[i].Variants == nil {
			f.Errors[i].Variants = StringOrArray{}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal interface: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write interface file %s: %w", path, err)
	}

	return nil
}

// Load reads the description at path and builds the validated interface. Warnings are
// logged; any error diagnostic fails the load.
func Load(path string) (*iface.ComponentInterface, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	ci, diags := f.Interface()

	log := Logger().With(zap.String("path", path))
	for _, w := range diags.Warnings {
		log.Warn(w.Message, zap.String("decl", w.Decl), zap.String("code", w.Code))
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w", path, diags.Error())
	}

	log.Debug("loaded interface",
		zap.String("namespace", ci.Namespace),
		zap.Int("records", len(ci.Records)),
		zap.Int("functions", len(ci.Functions)))

	return ci, nil
}
