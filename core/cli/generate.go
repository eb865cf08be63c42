package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GenerateOptions holds the parsed flags for "generate".
type GenerateOptions struct {
	Metadata string
	Out      string
}

// GenerateRunFunc is the function signature for the generate command
// handler. It is injected by the wiring layer (cmd/typetab/main.go).
type GenerateRunFunc func(ctx context.Context, opts GenerateOptions) error

// NewGenerateCmd creates the "generate" subcommand.
func NewGenerateCmd(runFunc GenerateRunFunc) *cobra.Command {
	var opts GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the version lookup tables",
		Long:  "Generate the mypy-extensions and typing-extensions version lookup tables from the symbol database and print them as literal source text.",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateMetadataFlag(opts.Metadata)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Metadata, "metadata", "", "Path to the symbol database JSON file (required)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write output to a file instead of stdout")

	cmd.MarkFlagRequired("metadata")

	return cmd
}

func validateMetadataFlag(path string) error {
	if path == "" {
		return fmt.Errorf("--metadata is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("metadata file does not exist: %s", path)
		}
		return fmt.Errorf("cannot access metadata file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("metadata path is a directory: %s", path)
	}

	return nil
}
