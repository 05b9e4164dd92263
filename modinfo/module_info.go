// Package modinfo loads build-graph metadata produced by the build system
// and computes per-module dependency depth for a requested target set.
package modinfo

import (
	"encoding/json"
	"fmt"
	"os"
)

// BuildModule is one node of the build graph as reported by the build
// system's module-info file. All paths are relative to the workspace root
// except Installed, which points at build outputs.
type BuildModule struct {
	Name         string   `json:"module_name"`
	Path         []string `json:"path"`
	Srcs         []string `json:"srcs"`
	Srcjars      []string `json:"srcjars"`
	Jars         []string `json:"jars"`
	Installed    []string `json:"installed"`
	Dependencies []string `json:"dependencies"`
	JarjarRules  []string `json:"jarjar_rules"`
	ClassesJars  []string `json:"classes_jar"`
	Class        []string `json:"class"`

	// Depth is the graph distance from the requested target set. It is not
	// part of the module-info file; ComputeDepths fills it in.
	Depth int `json:"-"`
}

// ModulePath returns the module's first declared root path.
func (m BuildModule) ModulePath() string {
	if len(m.Path) == 0 {
		return ""
	}
	return m.Path[0]
}

// HasJarjarRules reports whether the module's classes are repackaged by
// jarjar, which forces jar resolution from build outputs.
func (m BuildModule) HasJarjarRules() bool {
	return len(m.JarjarRules) > 0
}

// IsAppModule reports whether the module produces an application.
func (m BuildModule) IsAppModule() bool {
	for _, class := range m.Class {
		if class == "APPS" {
			return true
		}
	}
	return false
}

// Load parses a module-info file into a name-to-module mapping. Entries
// without an explicit module_name inherit their map key.
func Load(path string) (map[string]BuildModule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module info: %w", err)
	}

	modules := make(map[string]BuildModule)
	if err := json.Unmarshal(content, &modules); err != nil {
		return nil, fmt.Errorf("failed to parse module info %s: %w", path, err)
	}

	for name, module := range modules {
		if module.Name == "" {
			module.Name = name
			modules[name] = module
		}
	}

	return modules, nil
}
