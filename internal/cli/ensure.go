package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewEnsureCmd creates the ensure command.
func NewEnsureCmd() *cobra.Command {
	var noMarker bool

	cmd := &cobra.Command{
		Use:   "ensure <dir>",
		Short: "Create a directory tree with hardened permissions",
		Long: "Ensure creates the directory and all missing ancestors, escalates " +
			"permissions until it is writable (never world-writable) and writes an " +
			"access-deny marker unless told otherwise.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ops := newToolkit(cfg)
			if !ops.EnsureDir(args[0], !noMarker) {
				return fmt.Errorf("%s is not writable after permission escalation", args[0])
			}
			successColor.Printf("%s is ready\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&noMarker, "no-marker", false, "do not write an access-deny marker")

	return cmd
}
