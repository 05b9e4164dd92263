// Package locator reconstructs, per build module, which directories are
// genuine source roots, which generated artifacts are compiled resources,
// and which dependencies must be attached as jars versus inlined as source.
// It works purely from build-graph metadata plus read-only filesystem
// probes; every miss is recorded in the result sets rather than reported
// as an error.
package locator

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/LegacyCodeHQ/idegen/locator/java"
	"github.com/LegacyCodeHQ/idegen/modinfo"
)

// Mode selects the project layout the resolved sets will feed.
type Mode int

const (
	// ModeCombinedProject resolves every module into one shared IDE project.
	ModeCombinedProject Mode = iota
	// ModePerModuleProject resolves each requested module into its own IDE
	// project and represents everything else as a jar reference.
	ModePerModuleProject
)

const soongIntermediatesDir = "out/soong/.intermediates"

// The java files under these directories have to be ignored because they
// would introduce classes duplicated by libcore/ojluni/src/main/java.
var ignoredSourceDirs = map[string]bool{
	"libcore/ojluni/src/lambda/java": true,
}

// testDirSegment marks a source root as holding tests when it appears
// anywhere in the directory path.
const testDirSegment = "tests"

// Config carries the per-run settings shared by all resolvers.
type Config struct {
	// RootDir is the absolute workspace root that relative module paths are
	// probed against.
	RootDir string

	// Depth is the maximum module depth still represented as source.
	// Modules further away from the requested targets resolve as jars.
	Depth int

	Mode Mode

	// ProjectPaths lists the relative paths opened as their own projects.
	// Only consulted in ModePerModuleProject.
	ProjectPaths []string

	// ReadFile overrides how source files are read. Defaults to the
	// filesystem.
	ReadFile ContentReader
}

// Resolver locates the source folders and jar references of one module.
type Resolver struct {
	moduleName string
	module     modinfo.BuildModule
	cfg        Config

	// isProject marks a module opened directly as its own IDE project;
	// referencedByJar marks one reached purely as a dependency. Both are
	// only meaningful in ModePerModuleProject.
	isProject       bool
	referencedByJar bool

	result *Result
}

// NewResolver prepares a resolver for one module. The resolver is single
// use: Locate resolves once and returns the result sets.
func NewResolver(name string, module modinfo.BuildModule, cfg Config) *Resolver {
	if cfg.ReadFile == nil {
		cfg.ReadFile = ReadFromFileSystem
	}
	isProject := cfg.Mode == ModePerModuleProject && isProjectRelativePath(module.ModulePath(), cfg.ProjectPaths)
	return &Resolver{
		moduleName:      name,
		module:          module,
		cfg:             cfg,
		isProject:       isProject,
		referencedByJar: cfg.Mode == ModePerModuleProject && !isProject,
		result:          NewResult(),
	}
}

// isProjectRelativePath reports whether the module lives under one of the
// requested project paths.
func isProjectRelativePath(modulePath string, projectPaths []string) bool {
	if modulePath == "" {
		return false
	}
	for _, projectPath := range projectPaths {
		if modulePath == projectPath || strings.HasPrefix(modulePath, projectPath+"/") {
			return true
		}
	}
	return false
}

// Locate resolves the module into source folders, jar references, and build
// targets according to the configured mode. Filesystem misses never abort
// resolution; they surface in MissingJars or BuildTargets.
func (r *Resolver) Locate() *Result {
	switch r.cfg.Mode {
	case ModePerModuleProject:
		if r.isProject {
			r.collectSourcePaths()
			r.collectGeneratedResourcePaths()
			r.appendClassesJars()
		} else {
			r.locateJarPath()
		}
		r.collectMissingJars()
	default:
		if r.module.Depth <= r.cfg.Depth {
			// A jarjar-rewritten jar must still be attached even when the
			// module is inlined as source, or its repackaged classes are
			// unresolvable in the IDE.
			if r.module.HasJarjarRules() {
				r.appendJarFromInstalled(r.intermediatesPrefix())
			}
			r.collectSourcePaths()
			r.collectGeneratedResourcePaths()
		} else {
			r.collectJarFiles()
		}
	}
	return r.result
}

// collectSourcePaths resolves every declared source entry into a source or
// test root. Srcjar entries become pseudo source roots.
func (r *Resolver) collectSourcePaths() {
	for _, src := range r.module.Srcs {
		switch {
		case strings.HasSuffix(src, ".java"):
			if dir := r.sourceFolderOf(src); dir != "" {
				r.addSourceOrTestDir(dir)
			}
		case strings.HasSuffix(src, srcjarExt):
			r.collectSrcjarPath(src)
		}
	}
}

// sourceFolderOf infers the source root of a java file by scraping its
// package declaration. Returns "" when the file is missing or carries no
// usable package statement; such files cannot anchor a source root.
func (r *Resolver) sourceFolderOf(javaFile string) string {
	content, err := r.cfg.ReadFile(filepath.Join(r.cfg.RootDir, javaFile))
	if err != nil {
		return ""
	}
	packageName := java.ParsePackageDeclaration(content)
	if packageName == "" {
		return ""
	}
	return java.ParseSourceRoot(javaFile, packageName)
}

func (r *Resolver) addSourceOrTestDir(dir string) {
	if ignoredSourceDirs[dir] {
		return
	}
	if isTestDir(dir) {
		r.result.TestDirs.Add(dir)
		return
	}
	r.result.SrcDirs.Add(dir)
}

func isTestDir(dir string) bool {
	for _, segment := range strings.Split(dir, "/") {
		if segment == testDirSegment {
			return true
		}
	}
	return false
}

// collectGeneratedResourcePaths maps the module's generated srcjars to
// resource source directories. Only application modules within the source
// depth carry IDE-visible generated resources. A recognized container whose
// extracted directory is absent has not been built yet and becomes a build
// target instead of being dropped.
func (r *Resolver) collectGeneratedResourcePaths() {
	if !r.module.IsAppModule() || r.module.Depth > r.cfg.Depth {
		return
	}
	for _, srcjar := range r.module.Srcjars {
		r.collectSrcjarPath(srcjar)
		resourceDir := DeriveResourceDir(srcjar)
		if resourceDir == "" {
			continue
		}
		if r.exists(resourceDir) {
			r.result.RJavaPaths.Add(resourceDir)
		} else {
			r.result.BuildTargets.Add(srcjar)
		}
	}
}

// collectSrcjarPath records a srcjar as an attachable pseudo source root.
func (r *Resolver) collectSrcjarPath(srcjar string) {
	if !strings.HasSuffix(srcjar, srcjarExt) {
		return
	}
	r.result.SrcjarPaths.Add(DeriveJarPseudoPath(srcjar))
}

// collectJarFiles resolves the module's jar representation: declared jars
// take priority, the first usable installed output is the fallback.
func (r *Resolver) collectJarFiles() {
	r.setJarsJarfile()
	if len(r.result.JarFiles) == 0 && len(r.result.MissingJars) == 0 {
		r.appendJarFromInstalled("")
	}
}

// locateJarPath picks the jar representation for a non-project module in
// per-module layout. The priority is fixed: jarjar output, declared jars,
// classes jars, then any installed output.
func (r *Resolver) locateJarPath() {
	switch {
	case r.module.HasJarjarRules():
		r.appendJarFromInstalled(r.intermediatesPrefix())
	case len(r.module.Jars) > 0:
		r.setJarsJarfile()
	case len(r.module.ClassesJars) > 0:
		r.appendClassesJars()
	default:
		r.appendJarFromInstalled("")
	}
}

// setJarsJarfile joins every declared jar name with the module root and
// records it as present or missing.
func (r *Resolver) setJarsJarfile() {
	for _, jarName := range r.module.Jars {
		r.appendJarFile(path.Join(r.module.ModulePath(), jarName))
	}
}

// appendJarFromInstalled takes the first jar among the module's installed
// outputs, skipping .aar bundles. A non-empty pathPrefix restricts the
// candidates, which selects a specific variant jar.
func (r *Resolver) appendJarFromInstalled(pathPrefix string) {
	for _, installed := range r.module.Installed {
		if strings.HasSuffix(installed, ".aar") {
			continue
		}
		if pathPrefix != "" && !strings.HasPrefix(installed, pathPrefix) {
			continue
		}
		if r.appendJarFile(installed) {
			return
		}
	}
}

// appendClassesJars records the module's prebuilt classes jars, first
// resolvable reference wins.
func (r *Resolver) appendClassesJars() {
	for _, jar := range r.module.ClassesJars {
		if r.appendJarFile(jar) {
			return
		}
	}
}

// appendJarFile records a jar reference as present or missing. Non-jar
// references are rejected and not recorded at all.
func (r *Resolver) appendJarFile(jarPath string) bool {
	if !strings.HasSuffix(jarPath, ".jar") {
		return false
	}
	if r.exists(jarPath) {
		r.result.JarFiles.Add(jarPath)
	} else {
		r.result.MissingJars.Add(jarPath)
	}
	return true
}

// collectMissingJars schedules unresolved jars for build, but only for
// modules reached purely as dependencies. For a directly opened project the
// developer's intent is to inspect source, so missing jars stay reported in
// MissingJars without being scheduled.
func (r *Resolver) collectMissingJars() {
	if !r.referencedByJar {
		return
	}
	r.result.BuildTargets.Union(r.result.MissingJars)
}

// intermediatesPrefix is where the build system drops this module's
// processed outputs, e.g. jarjar-rewritten jars.
func (r *Resolver) intermediatesPrefix() string {
	return path.Join(soongIntermediatesDir, r.module.ModulePath(), r.moduleName)
}

func (r *Resolver) exists(relPath string) bool {
	_, err := os.Stat(filepath.Join(r.cfg.RootDir, relPath))
	return err == nil
}
