// Package deploy ties the tree operations, the filesystem probe, bundle
// extraction and hooks together into the installer's deployment workflow.
package deploy

import (
	"context"
	"os"

	version "github.com/hashicorp/go-version"

	"github.com/glorpus-work/deployfs/internal/logger"
	"github.com/glorpus-work/deployfs/pkg/errors"
	"github.com/glorpus-work/deployfs/pkg/hooks"
)

// Deployer executes deployment requests.
type Deployer struct {
	Ops     TreeOps
	Probe   NetProbe
	Hooks   HookRunner
	Bundles BundleExtractor
	Events  Events

	// StagingDir is where bundles are extracted before copying. Empty
	// means the system temp directory.
	StagingDir string
}

// Deploy runs a single deployment: version gate, optional bundle
// extraction, network filesystem check, optional purge, directory
// preparation with an access-deny marker, tree copy, post-deploy hook.
//
// The copy is the only step that can fail the deployment once the request
// validated; preparation steps are best-effort per the toolkit's rules.
func (d *Deployer) Deploy(ctx context.Context, req Request) (*Result, error) {
	if err := d.validate(req); err != nil {
		return nil, err
	}
	if err := checkVersion(req); err != nil {
		return nil, err
	}

	d.emit("prepare", "preparing "+req.TargetDir)

	src := req.SourceDir
	if req.BundlePath != "" {
		staging, err := os.MkdirTemp(d.StagingDir, req.Name+"-*")
		if err != nil {
			return nil, errors.Wrap(errors.ErrBundleExtract, err.Error())
		}
		defer d.Ops.DeleteTree(staging, true)

		if err := d.Bundles.ExtractBundle(ctx, req.BundlePath, staging); err != nil {
			d.emit("error", err.Error())
			return nil, errors.Wrapf(err, "extracting bundle %s", req.BundlePath)
		}
		src = staging
	}

	result := &Result{Target: req.TargetDir}
	if d.Probe != nil && d.Probe.IsNetworkFilesystem(req.TargetDir) {
		result.NetworkFS = true
		logger.Warn("Deployment target is on a network filesystem, expect slow file operations", logger.Fields{
			"target": req.TargetDir,
		})
	}

	if req.Purge {
		d.Ops.DeleteTree(req.TargetDir, false)
	}
	d.Ops.EnsureDir(req.TargetDir, true)

	d.emit("copy", "copying files into "+req.TargetDir)
	if err := d.Ops.CopyTree(src, req.TargetDir, req.DataOnly); err != nil {
		d.emit("error", err.Error())
		return nil, err
	}

	if req.HookScript != "" && d.Hooks != nil {
		d.emit("hook", "running "+req.HookScript)
		hctx := &hooks.Context{
			Name:      req.Name,
			Version:   req.Version,
			Operation: "deploy",
			SourceDir: src,
			TargetDir: req.TargetDir,
		}
		if err := d.Hooks.Execute(req.HookScript, hctx); err != nil {
			d.emit("error", err.Error())
			return nil, errors.Wrapf(err, "post-deploy hook for %s", req.Name)
		}
	}

	d.emit("done", req.Name+" deployed")
	logger.Success("Deployment finished", logger.Fields{
		"name":    req.Name,
		"version": req.Version,
		"target":  req.TargetDir,
	})
	return result, nil
}

func (d *Deployer) validate(req Request) error {
	if req.Name == "" {
		return errors.ErrNameEmpty
	}
	if req.TargetDir == "" {
		return errors.ErrTargetDirEmpty
	}
	if req.SourceDir == "" && req.BundlePath == "" {
		return errors.ErrSourceMissing
	}
	if req.SourceDir != "" && req.BundlePath != "" {
		return errors.ErrSourceAmbiguous
	}
	if d.Ops == nil {
		return errors.ErrNoTreeOps
	}
	if req.BundlePath != "" && d.Bundles == nil {
		return errors.ErrNoExtractor
	}
	return nil
}

func checkVersion(req Request) error {
	if req.MinVersion == "" {
		return nil
	}
	current, err := version.NewVersion(req.Version)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidVersion, "%q", req.Version)
	}
	minimum, err := version.NewVersion(req.MinVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidVersion, "minimum %q", req.MinVersion)
	}
	if current.LessThan(minimum) {
		return errors.Wrapf(errors.ErrVersionTooOld, "%s < %s", current, minimum)
	}
	return nil
}

func (d *Deployer) emit(phase, msg string) {
	if d.Events.OnEvent != nil {
		d.Events.OnEvent(Event{Phase: phase, Msg: msg})
	}
}
