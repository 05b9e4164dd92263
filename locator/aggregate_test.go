package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/idegen/modinfo"
)

func TestResolveModules_OneResultPerModule(t *testing.T) {
	root := setupSourceTree(t)
	writeWorkspaceFile(t, root, "frameworks/base/core/java/android/app/App.java",
		"package android.app;\n\nclass App {}\n")

	modules := map[string]modinfo.BuildModule{
		"test": sourceModule(),
		"framework": {
			Name: "framework",
			Path: []string{"frameworks/base"},
			Srcs: []string{"frameworks/base/core/java/android/app/App.java"},
		},
	}

	results := ResolveModules(modules, Config{RootDir: root})
	require.Len(t, results, 2)

	assert.Equal(t, []string{testModulePath + "/src/main/java"}, results["test"].SrcDirs.Sorted())
	assert.Equal(t, []string{"frameworks/base/core/java"}, results["framework"].SrcDirs.Sorted())
}

func TestMergeResults_UnionsAcrossModules(t *testing.T) {
	first := NewResult()
	first.SrcDirs.Add("a/src")
	first.MissingJars.Add("a/missing.jar")

	second := NewResult()
	second.SrcDirs.Add("b/src")
	second.MissingJars.Add("a/missing.jar")

	merged := MergeResults(map[string]*Result{"a": first, "b": second})

	assert.Equal(t, []string{"a/src", "b/src"}, merged.SrcDirs.Sorted())
	assert.Equal(t, []string{"a/missing.jar"}, merged.MissingJars.Sorted())
}
