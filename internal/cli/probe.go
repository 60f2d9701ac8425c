package cli

import (
	"github.com/spf13/cobra"

	"github.com/glorpus-work/deployfs/pkg/probe"
)

// NewProbeCmd creates the probe command.
func NewProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <path>",
		Short: "Check whether a path is on a network filesystem",
		Long: "Probe asks the system's diagnostic tooling whether the path lives " +
			"on a network filesystem. Without an execution facility the answer is " +
			"always local.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			detector := probe.NewDetector(probe.NewRunner(), cfg.Settings.NetworkFSTypes)
			if detector.IsNetworkFilesystem(args[0]) {
				warnColor.Printf("%s is on a network filesystem\n", args[0])
			} else {
				successColor.Printf("%s is on a local filesystem\n", args[0])
			}
			return nil
		},
	}

	return cmd
}
