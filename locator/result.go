package locator

import "sort"

// StringSet tracks unique path entries.
type StringSet map[string]bool

// NewStringSet returns a set pre-filled with the given values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = true
	}
	return s
}

// Add inserts a value into the set.
func (s StringSet) Add(value string) {
	s[value] = true
}

// Union inserts every value of other into the set.
func (s StringSet) Union(other StringSet) {
	for v := range other {
		s[v] = true
	}
}

// Sorted returns the set's values in lexical order.
func (s StringSet) Sorted() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Result holds the resolved source and dependency sets for one module. All
// paths are relative to the workspace root. A Result is produced once per
// module and never mutated afterwards; callers aggregate results by merging
// them into a fresh value.
type Result struct {
	// SrcDirs and TestDirs are the inferred source roots, mutually exclusive.
	SrcDirs  StringSet
	TestDirs StringSet

	// JarFiles are jar references verified to exist on disk; MissingJars are
	// the declared references that were not found.
	JarFiles    StringSet
	MissingJars StringSet

	// RJavaPaths are generated-resource source directories (aapt2 / R).
	RJavaPaths StringSet

	// SrcjarPaths are jar-as-source-root pseudo entries of the form <path>!/.
	SrcjarPaths StringSet

	// BuildTargets are artifacts that must be built before the generated
	// project is usable.
	BuildTargets StringSet
}

// NewResult returns an empty result with all sets initialized.
func NewResult() *Result {
	return &Result{
		SrcDirs:      make(StringSet),
		TestDirs:     make(StringSet),
		JarFiles:     make(StringSet),
		MissingJars:  make(StringSet),
		RJavaPaths:   make(StringSet),
		SrcjarPaths:  make(StringSet),
		BuildTargets: make(StringSet),
	}
}

// Merge unions other into r. Merge order does not affect the outcome.
func (r *Result) Merge(other *Result) {
	r.SrcDirs.Union(other.SrcDirs)
	r.TestDirs.Union(other.TestDirs)
	r.JarFiles.Union(other.JarFiles)
	r.MissingJars.Union(other.MissingJars)
	r.RJavaPaths.Union(other.RJavaPaths)
	r.SrcjarPaths.Union(other.SrcjarPaths)
	r.BuildTargets.Union(other.BuildTargets)
}
