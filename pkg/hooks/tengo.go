// Package hooks executes Tengo script hooks around deployments.
package hooks

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/glorpus-work/deployfs/internal/logger"
	"github.com/glorpus-work/deployfs/pkg/errors"
)

// TengoExecutor is the default implementation of Executor.
type TengoExecutor struct{}

// NewTengoExecutor creates a new Tengo hook executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{}
}

// Execute runs the Tengo script at scriptPath with the provided context.
// The script sees a `context` module (name, version, operation) and a
// `dirs` module (source_dir, target_dir where set).
func (e *TengoExecutor) Execute(scriptPath string, hctx *Context) error {
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return errors.Wrapf(errors.ErrHookScript, "hook script %s does not exist", scriptPath)
	}

	logger.Debug("Executing hook script", logger.Fields{
		"hook_path": scriptPath,
		"operation": hctx.Operation,
		"name":      hctx.Name,
	})

	scriptContent, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read hook script %s: %w", scriptPath, err)
	}

	moduleMap := stdlib.GetModuleMap(stdlib.AllModuleNames()...)
	e.setupScriptContext(moduleMap, hctx)

	script := tengo.NewScript(scriptContent)
	script.SetImports(moduleMap)

	if _, err := script.Run(); err != nil {
		return errors.Wrapf(err, "hook script execution failed for %s", scriptPath)
	}

	logger.Debug("Hook script executed successfully", logger.Fields{
		"hook_path": scriptPath,
		"operation": hctx.Operation,
	})

	return nil
}

func (e *TengoExecutor) setupScriptContext(moduleMap *tengo.ModuleMap, hctx *Context) {
	moduleMap.AddBuiltinModule("context", map[string]tengo.Object{
		"name":      &tengo.String{Value: hctx.Name},
		"version":   &tengo.String{Value: hctx.Version},
		"operation": &tengo.String{Value: hctx.Operation},
	})

	dirModule := make(map[string]tengo.Object)
	if hctx.SourceDir != "" {
		dirModule["source_dir"] = &tengo.String{Value: hctx.SourceDir}
	}
	if hctx.TargetDir != "" {
		dirModule["target_dir"] = &tengo.String{Value: hctx.TargetDir}
	}
	if len(dirModule) > 0 {
		moduleMap.AddBuiltinModule("dirs", dirModule)
	}
}
