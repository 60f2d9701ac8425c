package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/deployfs/pkg/fsops"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Print the canonical form of a path",
		Long: "Resolve prints the absolute, symlink-resolved form of the path if " +
			"it exists, or the path unchanged if it does not.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(fsops.Canonicalize(args[0]))
			return nil
		},
	}

	return cmd
}
