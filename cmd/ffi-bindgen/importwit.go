package main

import (
	"errors"

	"github.com/spf13/cobra"

	"ffi-bindgen/internal/idl"
	"ffi-bindgen/internal/witimport"
)

func newImportWitCmd() *cobra.Command {
	var (
		namespace string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "import-wit <resolve.json>",
		Short: "Convert resolved WIT JSON into a YAML interface description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if namespace == "" {
				return errors.New("--namespace is required")
			}

			ci, err := witimport.LoadFile(args[0], namespace)
			if err != nil {
				return err
			}

			f := idl.FromInterface(ci)

			if output == "" || output == "-" {
				data, err := idl.Marshal(f)
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(data)

				return err
			}

			return idl.WriteFile(f, output)
		},
	}

	cmd.Flags().StringVar(&namespace, "namespace", "", "namespace of the native entry points")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
