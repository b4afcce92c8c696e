package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ffi-bindgen/internal/gen"
)

func newHelpersCmd() *cobra.Command {
	var (
		src    sourceFlags
		only   []string
		indent int
	)

	cmd := &cobra.Command{
		Use:   "helpers [interface.yaml]",
		Short: "Print the RustBuffer helper routines of every composite type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ci, err := src.load(args)
			if err != nil {
				return err
			}

			registry, err := gen.BuildRegistry(ci, strings.Repeat(" ", indent))
			if err != nil {
				return err
			}

			sets := registry.Helpers()

			if len(only) > 0 {
				sets = sets[:0:0]

				for _, name := range only {
					set, ok := registry.Lookup(name)
					if !ok {
						return fmt.Errorf("no helpers for %s", name)
					}

					sets = append(sets, set)
				}
			}

			out := cmd.OutOrStdout()
			for _, set := range sets {
				fmt.Fprintf(out, "# %s\n", set.Canonical)

				for _, body := range []string{set.CalculateWriteSize, set.AllocFrom, set.ConsumeInto, set.Write, set.Read} {
					fmt.Fprintf(out, "%s\n\n", body)
				}
			}

			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringSliceVar(&only, "type", nil, "canonical type names to print, e.g. Optional_String")
	cmd.Flags().IntVar(&indent, "indent", 4, "spaces per indentation level")

	return cmd
}
