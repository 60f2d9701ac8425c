package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	var (
		keepRoot bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "remove <dir>",
		Short: "Remove a directory tree",
		Long: "Remove deletes everything under the directory, best-effort. " +
			"Individual failures are skipped rather than aborting the cleanup.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if !force {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Remove %s and everything under it?", args[0]),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			ops := newToolkit(cfg)
			if !ops.DeleteTree(args[0], !keepRoot) {
				warnColor.Printf("Some entries under %s could not be removed\n", args[0])
				return nil
			}
			successColor.Printf("Removed %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepRoot, "keep-root", false, "empty the directory but keep it")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "do not ask for confirmation")

	return cmd
}
