package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level typetab command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typetab",
		Short: "Version table generator for typing-related symbols",
		Long:  "Typetab computes the minimal interpreter version at which each typing-related symbol became available and emits ready-to-paste literal lookup tables.",
	}

	cmd.Version = version

	return cmd
}
