package modules

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/idegen/modinfo"
)

type modulesOptions struct {
	rootDir    string
	moduleInfo string
}

// Cmd represents the modules command.
var Cmd = NewCommand()

// NewCommand returns a new modules command instance.
func NewCommand() *cobra.Command {
	opts := &modulesOptions{}

	cmd := &cobra.Command{
		Use:   "modules <module>...",
		Short: "List modules reachable from the given targets with their depth",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModules(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.rootDir, "root", "r", "", "Workspace root (default: current directory)")
	cmd.Flags().StringVarP(&opts.moduleInfo, "module-info", "m", "", "Path to module-info.json (default: <root>/out/module-info.json)")

	return cmd
}

func runModules(cmd *cobra.Command, opts *modulesOptions, targets []string) error {
	rootDir := opts.rootDir
	if rootDir == "" {
		rootDir = "."
	}
	moduleInfoPath := opts.moduleInfo
	if moduleInfoPath == "" {
		moduleInfoPath = filepath.Join(rootDir, "out", "module-info.json")
	}

	modules, err := modinfo.Load(moduleInfoPath)
	if err != nil {
		return err
	}

	depths, err := modinfo.ComputeDepths(modules, targets)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(depths))
	for name := range depths {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if depths[names[i]] != depths[names[j]] {
			return depths[names[i]] < depths[names[j]]
		}
		return names[i] < names[j]
	})

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintf(out, "%d\t%s\n", depths[name], name)
	}
	return nil
}
