package cli

import (
	"github.com/spf13/cobra"
)

// NewCopyCmd creates the copy command.
func NewCopyCmd() *cobra.Command {
	var dataOnly bool

	cmd := &cobra.Command{
		Use:   "copy <source> <target>",
		Short: "Copy a file tree",
		Long: "Copy mirrors the source tree into the target directory. With " +
			"--data-only, files carrying excluded extensions are skipped at every " +
			"depth so existing logic files survive.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ops := newToolkit(cfg)
			if err := ops.CopyTree(args[0], args[1], dataOnly); err != nil {
				return err
			}
			successColor.Printf("Copied %s to %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&dataOnly, "data-only", false, "skip logic files (excluded extensions)")

	return cmd
}
