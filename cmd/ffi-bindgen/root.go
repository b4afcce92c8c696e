package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ffi-bindgen/internal/gen"
	"ffi-bindgen/internal/idl"
	"ffi-bindgen/internal/witimport"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// GlobalFlags holds the flags shared by every command.
type GlobalFlags struct {
	Verbose bool
}

func newRootCmd() *cobra.Command {
	var flags GlobalFlags

	root := &cobra.Command{
		Use:   "ffi-bindgen",
		Short: "Generate Python ctypes binding fragments from an interface description",
		Long: `ffi-bindgen turns an interface description (YAML, or resolved WIT in JSON form)
into the fragments of a Python ctypes binding: native entry point declarations,
per-argument conversion expressions and RustBuffer serialization helpers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(flags.Verbose)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}

			gen.SetLogger(log.Named("gen"))
			idl.SetLogger(log.Named("idl"))
			witimport.SetLogger(log.Named("witimport"))

			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(newGenCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newHelpersCmd())
	root.AddCommand(newImportWitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	return cfg.Build()
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ffi-bindgen", version)
		},
	}
}
