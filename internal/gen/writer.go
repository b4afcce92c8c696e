package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Encode writes b as a YAML document.
func (b *Bundle) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}

	return enc.Close()
}

// WriteFile writes b as YAML to path, creating the parent directory if needed.
func (b *Bundle) WriteFile(path string) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	if err := b.Encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
