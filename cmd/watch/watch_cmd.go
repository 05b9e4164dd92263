package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/idegen/generator"
)

type watchOptions struct {
	rootDir    string
	moduleInfo string
	outDir     string
	depth      int
	perModule  bool
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <module>...",
		Short: "Regenerate the IDE project whenever the module-info file changes",
		Long: `Watch the build system's module-info file and regenerate the IDE
project files each time it is rewritten, so the open project tracks the
build graph.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.rootDir, "root", "r", "", "Workspace root (default: current directory)")
	cmd.Flags().StringVarP(&opts.moduleInfo, "module-info", "m", "", "Path to module-info.json (default: <root>/out/module-info.json)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory for project files (default: <root>/out/idegen)")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "Maximum dependency depth represented as source")
	cmd.Flags().BoolVar(&opts.perModule, "per-module", false, "Generate one IDE project per target module")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions, targets []string) error {
	rootDir := opts.rootDir
	if rootDir == "" {
		rootDir = "."
	}
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	moduleInfoPath := opts.moduleInfo
	if moduleInfoPath == "" {
		moduleInfoPath = filepath.Join(absRoot, "out", "module-info.json")
	}

	genOpts := generator.Options{
		RootDir:        absRoot,
		ModuleInfoPath: moduleInfoPath,
		Targets:        targets,
		Depth:          opts.depth,
		PerModule:      opts.perModule,
		OutDir:         opts.outDir,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	regenerate := func() {
		summary, err := generator.Generate(genOpts)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "generation failed: %v\n", err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Regenerated %d modules into %s\n",
			summary.ModuleCount, filepath.Dir(summary.ModulesXMLPath))
	}

	regenerate()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", moduleInfoPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndRegenerate(ctx, moduleInfoPath, regenerate)
}
