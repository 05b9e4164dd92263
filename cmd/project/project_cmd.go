package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/idegen/generator"
)

type projectOptions struct {
	rootDir    string
	moduleInfo string
	outDir     string
	depth      int
	perModule  bool
}

// Cmd represents the project command.
var Cmd = NewCommand()

// NewCommand returns a new project command instance.
func NewCommand() *cobra.Command {
	opts := &projectOptions{}

	cmd := &cobra.Command{
		Use:   "project <module>...",
		Short: "Generate IDE project files for the given build modules",
		Long: `Generate IntelliJ IDEA project files for the given build modules.

Every module reachable from the targets through the dependency graph is
resolved: modules within --depth are inlined as source, everything further
away is attached as a compiled jar.

Examples:
  idegen project Settings                  # one combined project
  idegen project Settings --depth 2        # inline dependencies up to depth 2
  idegen project Settings Music --per-module`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.rootDir, "root", "r", "", "Workspace root (default: current directory)")
	cmd.Flags().StringVarP(&opts.moduleInfo, "module-info", "m", "", "Path to module-info.json (default: <root>/out/module-info.json)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory for project files (default: <root>/out/idegen)")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "Maximum dependency depth represented as source")
	cmd.Flags().BoolVar(&opts.perModule, "per-module", false, "Generate one IDE project per target module")

	return cmd
}

func runProject(cmd *cobra.Command, opts *projectOptions, targets []string) error {
	rootDir, err := resolveRootDir(opts.rootDir)
	if err != nil {
		return err
	}

	summary, err := generator.Generate(generator.Options{
		RootDir:        rootDir,
		ModuleInfoPath: opts.moduleInfo,
		Targets:        targets,
		Depth:          opts.depth,
		PerModule:      opts.perModule,
		OutDir:         opts.outDir,
	})
	if err != nil {
		return fmt.Errorf("failed to generate project: %w", err)
	}

	printSummary(cmd, summary)
	return nil
}

func resolveRootDir(rootDir string) (string, error) {
	if rootDir == "" {
		rootDir = "."
	}
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace root: %w", err)
	}
	return absRoot, nil
}

func printSummary(cmd *cobra.Command, summary *generator.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Resolved %d modules\n", summary.ModuleCount)
	for _, imlPath := range summary.IMLPaths {
		fmt.Fprintf(out, "Wrote %s\n", imlPath)
	}
	if summary.ModulesXMLPath != "" {
		fmt.Fprintf(out, "Wrote %s\n", summary.ModulesXMLPath)
	}

	if len(summary.MissingJars) > 0 {
		fmt.Fprintf(out, "\n%d jar references were not found on disk:\n", len(summary.MissingJars))
		for _, jar := range summary.MissingJars {
			fmt.Fprintf(out, "  %s\n", jar)
		}
	}
	if len(summary.BuildTargets) > 0 {
		fmt.Fprintf(out, "\nBuild these targets before opening the project:\n")
		for _, target := range summary.BuildTargets {
			fmt.Fprintf(out, "  %s\n", target)
		}
	}
}
