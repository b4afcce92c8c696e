package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ffi-bindgen/iface"
	"ffi-bindgen/internal/idl"
	"ffi-bindgen/internal/witimport"
)

// sourceFlags select where the interface comes from: a YAML description given as the
// only argument, or a WIT JSON file given with --wit.
type sourceFlags struct {
	WitPath   string
	Namespace string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.WitPath, "wit", "", "read resolved WIT JSON instead of a YAML description")
	cmd.Flags().StringVar(&s.Namespace, "namespace", "", "namespace of the native entry points (required with --wit)")
}

func (s *sourceFlags) load(args []string) (*iface.ComponentInterface, error) {
	if s.WitPath == "" {
		if len(args) != 1 {
			return nil, errors.New("expected one interface description, or --wit")
		}

		ci, err := idl.Load(args[0])
		if err != nil {
			return nil, err
		}

		if s.Namespace != "" {
			ci.Namespace = s.Namespace
		}

		return ci, nil
	}

	if len(args) != 0 {
		return nil, errors.New("--wit does not take a description argument")
	}

	if s.Namespace == "" {
		return nil, errors.New("--namespace is required with --wit")
	}

	ci, err := witimport.LoadFile(s.WitPath, s.Namespace)
	if err != nil {
		return nil, err
	}

	if diags := ci.Validate(); diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w", s.WitPath, diags.Error())
	}

	return ci, nil
}
