package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"ffi-bindgen/iface"
)

func newInspectCmd() *cobra.Command {
	var (
		src  sourceFlags
		dump bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [interface.yaml]",
		Short: "List the types an interface uses and their FFI mapping",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ci, err := src.load(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
				cfg.Fdump(out, ci)

				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tKIND\tFFI")

			for _, t := range ci.IterTypes() {
				ft, err := iface.FFITypeOf(t)
				if err != nil {
					return err
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\n", iface.MustCanonicalName(t), t.Kind(), ft)
			}

			return tw.Flush()
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the parsed interface instead of the type table")

	return cmd
}
