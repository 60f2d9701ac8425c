package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/deployfs/pkg/archive"
	"github.com/glorpus-work/deployfs/pkg/deploy"
	"github.com/glorpus-work/deployfs/pkg/hooks"
	"github.com/glorpus-work/deployfs/pkg/probe"
)

// NewDeployCmd creates the deploy command.
func NewDeployCmd() *cobra.Command {
	var (
		name       string
		deployVer  string
		minVersion string
		sourceDir  string
		bundlePath string
		dataOnly   bool
		purge      bool
		hookScript string
	)

	cmd := &cobra.Command{
		Use:   "deploy <target-dir>",
		Short: "Deploy a file tree or bundle into a target directory",
		Long: "Deploy copies a source tree (or extracts a bundle) into the target " +
			"directory, preparing it with hardened permissions and an access-deny " +
			"marker, and optionally running a post-deploy hook script.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			deployer := &deploy.Deployer{
				Ops:        newToolkit(cfg),
				Probe:      probe.NewDetector(probe.NewRunner(), cfg.Settings.NetworkFSTypes),
				Hooks:      hooks.NewTengoExecutor(),
				Bundles:    archive.NewManager(),
				StagingDir: cfg.Settings.StagingDir,
				Events: deploy.Events{OnEvent: func(e deploy.Event) {
					if Verbose != nil && *Verbose {
						fmt.Printf("[%s] %s\n", e.Phase, e.Msg)
					}
				}},
			}

			result, err := deployer.Deploy(cmd.Context(), deploy.Request{
				Name:       name,
				Version:    deployVer,
				MinVersion: minVersion,
				SourceDir:  sourceDir,
				BundlePath: bundlePath,
				TargetDir:  args[0],
				DataOnly:   dataOnly,
				Purge:      purge,
				HookScript: hookScript,
			})
			if err != nil {
				return err
			}

			if result.NetworkFS {
				warnColor.Printf("Warning: %s is on a network filesystem\n", result.Target)
			}
			successColor.Printf("Deployed %s %s to %s\n", name, deployVer, result.Target)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name of the component being deployed")
	cmd.Flags().StringVar(&deployVer, "version", "", "version being deployed")
	cmd.Flags().StringVar(&minVersion, "min-version", "", "reject versions older than this")
	cmd.Flags().StringVar(&sourceDir, "source", "", "source directory to copy")
	cmd.Flags().StringVar(&bundlePath, "bundle", "", "bundle archive to extract and copy")
	cmd.Flags().BoolVar(&dataOnly, "data-only", false, "skip logic files (excluded extensions)")
	cmd.Flags().BoolVar(&purge, "purge", false, "clear the target's contents first")
	cmd.Flags().StringVar(&hookScript, "hook", "", "post-deploy hook script to run")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
