// Package generator wires the module-graph provider, the per-module
// resolvers, and the project-file writer into one generation pass.
package generator

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/LegacyCodeHQ/idegen/locator"
	"github.com/LegacyCodeHQ/idegen/modinfo"
	"github.com/LegacyCodeHQ/idegen/project"
)

// Options selects what to generate and where.
type Options struct {
	// RootDir is the absolute workspace root.
	RootDir string

	// ModuleInfoPath locates the build system's module-info file. Defaults
	// to out/module-info.json under the root.
	ModuleInfoPath string

	// Targets are the module names the developer asked to open.
	Targets []string

	// Depth is the maximum dependency depth still inlined as source.
	Depth int

	// PerModule generates one IDE project per target module instead of a
	// single combined project.
	PerModule bool

	// OutDir receives the generated project files. Defaults to out/idegen
	// under the root.
	OutDir string
}

// Summary reports what a generation pass produced.
type Summary struct {
	// ModuleCount is the number of modules reachable from the targets.
	ModuleCount int

	// IMLPaths are the generated module definition files.
	IMLPaths []string

	// ModulesXMLPath is the generated project manifest.
	ModulesXMLPath string

	// MissingJars are declared jars that were not found on disk.
	MissingJars []string

	// BuildTargets are artifacts that must be built before the project is
	// fully usable.
	BuildTargets []string
}

// Generate runs one full generation pass: load the module graph, compute
// dependency depths from the targets, resolve every reachable module, and
// write the IDE project files.
func Generate(opts Options) (*Summary, error) {
	if len(opts.Targets) == 0 {
		return nil, fmt.Errorf("at least one target module is required")
	}
	if opts.ModuleInfoPath == "" {
		opts.ModuleInfoPath = filepath.Join(opts.RootDir, "out", "module-info.json")
	}
	if opts.OutDir == "" {
		opts.OutDir = filepath.Join(opts.RootDir, "out", "idegen")
	}

	modules, err := modinfo.Load(opts.ModuleInfoPath)
	if err != nil {
		return nil, err
	}

	reachable, projectPaths, err := reachableModules(modules, opts.Targets)
	if err != nil {
		return nil, err
	}

	cfg := locator.Config{
		RootDir:      opts.RootDir,
		Depth:        opts.Depth,
		ProjectPaths: projectPaths,
	}
	if opts.PerModule {
		cfg.Mode = locator.ModePerModuleProject
	}

	results := locator.ResolveModules(reachable, cfg)

	summary := &Summary{ModuleCount: len(reachable)}
	collectDiagnostics(summary, results)

	if opts.PerModule {
		err = writePerModuleProjects(summary, opts, results)
	} else {
		err = writeCombinedProject(summary, opts, results)
	}
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// reachableModules computes depths from the target set and returns the
// reachable subgraph plus the targets' project paths.
func reachableModules(modules map[string]modinfo.BuildModule, targets []string) (map[string]modinfo.BuildModule, []string, error) {
	depths, err := modinfo.ComputeDepths(modules, targets)
	if err != nil {
		return nil, nil, err
	}

	var projectPaths []string
	for _, target := range targets {
		if modulePath := modules[target].ModulePath(); modulePath != "" {
			projectPaths = append(projectPaths, modulePath)
		}
	}

	return modinfo.ApplyDepths(modules, depths), projectPaths, nil
}

// writeCombinedProject unions every module's sets into one project named
// after the first target.
func writeCombinedProject(summary *Summary, opts Options, results map[string]*locator.Result) error {
	merged := locator.MergeResults(results)

	imlPath, err := project.WriteModuleIML(opts.OutDir, opts.RootDir, opts.Targets[0], merged)
	if err != nil {
		return err
	}
	summary.IMLPaths = []string{imlPath}

	xmlPath, err := project.WriteModulesXML(opts.OutDir, summary.IMLPaths)
	if err != nil {
		return err
	}
	summary.ModulesXMLPath = xmlPath
	return nil
}

// writePerModuleProjects writes one module definition per target. Each
// target's own sets are combined with the jar representations of everything
// it depends on.
func writePerModuleProjects(summary *Summary, opts Options, results map[string]*locator.Result) error {
	targets := make(map[string]bool, len(opts.Targets))
	for _, target := range opts.Targets {
		targets[target] = true
	}

	dependencyJars := locator.NewResult()
	for name, result := range results {
		if !targets[name] {
			dependencyJars.Merge(result)
		}
	}

	sortedTargets := append([]string(nil), opts.Targets...)
	sort.Strings(sortedTargets)

	for _, target := range sortedTargets {
		result, ok := results[target]
		if !ok {
			continue
		}
		combined := locator.NewResult()
		combined.Merge(result)
		combined.Merge(dependencyJars)

		imlPath, err := project.WriteModuleIML(opts.OutDir, opts.RootDir, target, combined)
		if err != nil {
			return err
		}
		summary.IMLPaths = append(summary.IMLPaths, imlPath)
	}

	xmlPath, err := project.WriteModulesXML(opts.OutDir, summary.IMLPaths)
	if err != nil {
		return err
	}
	summary.ModulesXMLPath = xmlPath
	return nil
}

func collectDiagnostics(summary *Summary, results map[string]*locator.Result) {
	missing := locator.NewStringSet()
	buildTargets := locator.NewStringSet()
	for _, result := range results {
		missing.Union(result.MissingJars)
		buildTargets.Union(result.BuildTargets)
	}
	summary.MissingJars = missing.Sorted()
	summary.BuildTargets = buildTargets.Sorted()
}
