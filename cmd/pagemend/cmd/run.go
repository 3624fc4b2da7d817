package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagemend/pagemend/internal/batch"
	"github.com/pagemend/pagemend/internal/config"
	"github.com/pagemend/pagemend/internal/ops"
	"github.com/pagemend/pagemend/internal/workspace"
)

// openRegistry resolves the workspace registry from configuration.
func openRegistry(cfg *config.Config) (*workspace.Registry, error) {
	path := cfg.Workspace.RegistryPath
	if path == "" {
		var err error
		path, err = workspace.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return workspace.Open(path), nil
}

// resolveInputs maps each argument to a path: arguments that name a
// registered workspace expand to its directory, everything else passes
// through as a filesystem path.
func resolveInputs(cfg *config.Config, args []string) ([]string, error) {
	reg, err := openRegistry(cfg)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if _, statErr := os.Stat(arg); statErr == nil {
			paths = append(paths, arg)
			continue
		}
		dir, ok, err := reg.Resolve(arg)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%s is neither a path nor a registered workspace", arg)
		}
		paths = append(paths, dir)
	}
	return paths, nil
}

// batchConfig maps the resolved configuration onto output placement
// for one batch run.
func batchConfig(cfg *config.Config, cmd *cobra.Command) *batch.Config {
	bc := &batch.Config{
		OutputDir:      cfg.Output.Dir,
		ModifiedSubdir: cfg.Output.ModifiedSubdir,
		Overwrite:      cfg.Output.Overwrite,
	}
	bc.DryRun, _ = cmd.Flags().GetBool("dry-run")
	return bc
}

// runBatch is the shared driver behind every transforming verb:
// resolve inputs, run the operation over them and emit the report.
func runBatch(cmd *cobra.Command, args []string, op ops.Operation) error {
	cfg := GetConfig()
	paths, err := resolveInputs(cfg, args)
	if err != nil {
		return err
	}
	result, err := batch.Run(paths, op, batchConfig(cfg, cmd))
	if err != nil {
		return err
	}
	reportFile, _ := cmd.Flags().GetString("report")
	if err := batch.SaveReport(result, cfg.Output.Format, reportFile); err != nil {
		return err
	}
	return result.Err()
}
