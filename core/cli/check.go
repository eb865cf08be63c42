package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// CheckOptions holds the parsed flags for "check".
type CheckOptions struct {
	Metadata string
}

// CheckRunFunc is the function signature for the check command handler.
type CheckRunFunc func(ctx context.Context, opts CheckOptions) error

// NewCheckCmd creates the "check" subcommand.
func NewCheckCmd(runFunc CheckRunFunc) *cobra.Command {
	var opts CheckOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check pinned collaborator versions against the package index",
		Long:  "Check whether the collaborator package versions pinned in the symbol database are behind the latest releases on the package index.",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateMetadataFlag(opts.Metadata)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFunc(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Metadata, "metadata", "", "Path to the symbol database JSON file (required)")

	cmd.MarkFlagRequired("metadata")

	return cmd
}
