package main

import (
	"strings"

	"github.com/spf13/cobra"

	"ffi-bindgen/internal/gen"
)

func newGenCmd() *cobra.Command {
	var (
		src       sourceFlags
		output    string
		indent    int
		returnVar string
	)

	cmd := &cobra.Command{
		Use:   "gen [interface.yaml]",
		Short: "Generate the binding fragments as a YAML bundle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ci, err := src.load(args)
			if err != nil {
				return err
			}

			cfg := gen.DefaultGeneratorConfig()
			cfg.Indent = strings.Repeat(" ", indent)
			cfg.ReturnVar = returnVar

			bundle, err := gen.NewGenerator(cfg).Generate(ci)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return bundle.Encode(cmd.OutOrStdout())
			}

			return bundle.WriteFile(output)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&indent, "indent", 4, "spaces per indentation level in helper bodies")
	cmd.Flags().StringVar(&returnVar, "return-var", gen.DefaultGeneratorConfig().ReturnVar,
		"variable holding native return values in lift expressions")

	return cmd
}
