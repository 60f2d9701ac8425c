package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFindCmd creates the find command.
func NewFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <dir> <pattern>",
		Short: "Recursively match a pattern under a directory",
		Long: "Find lists every entry under the directory whose name matches the " +
			"glob pattern. Symbolic-link subdirectories are never followed.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ops := newToolkit(cfg)
			for _, match := range ops.MatchRecursive(args[0], args[1]) {
				fmt.Println(match)
			}
			return nil
		},
	}

	return cmd
}
