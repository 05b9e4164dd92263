package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupWorkspace builds a minimal workspace: an app module with one source
// file, a library dependency with a resolvable jar, and a module-info file
// describing both.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "packages/apps/Music/src/com/android/music/Music.java",
		"package com.android.music;\n\npublic class Music {}\n")
	writeFile(t, root, "frameworks/support/support.jar", "jar")

	writeFile(t, root, "out/module-info.json", `{
  "Music": {
    "class": ["APPS"],
    "path": ["packages/apps/Music"],
    "srcs": ["packages/apps/Music/src/com/android/music/Music.java"],
    "dependencies": ["support", "not-built"]
  },
  "support": {
    "class": ["JAVA_LIBRARIES"],
    "path": ["frameworks/support"],
    "jars": ["support.jar", "support-v4.jar"]
  }
}`)

	return root
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func TestGenerate_CombinedProject(t *testing.T) {
	root := setupWorkspace(t)

	summary, err := Generate(Options{RootDir: root, Targets: []string{"Music"}})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.ModuleCount)
	require.Len(t, summary.IMLPaths, 1)
	assert.Equal(t, filepath.Join(root, "out", "idegen", "Music.iml"), summary.IMLPaths[0])

	content, err := os.ReadFile(summary.IMLPaths[0])
	require.NoError(t, err)
	// The target is inlined as source, the depth-1 dependency as a jar.
	assert.Contains(t, string(content), "packages/apps/Music/src")
	assert.Contains(t, string(content), "frameworks/support/support.jar")

	assert.Equal(t, []string{"frameworks/support/support-v4.jar"}, summary.MissingJars)
	assert.FileExists(t, summary.ModulesXMLPath)
}

func TestGenerate_DepthInlinesDependencySource(t *testing.T) {
	root := setupWorkspace(t)
	writeFile(t, root, "frameworks/support/src/android/support/Support.java",
		"package android.support;\n\npublic class Support {}\n")

	updated := `{
  "Music": {
    "class": ["APPS"],
    "path": ["packages/apps/Music"],
    "srcs": ["packages/apps/Music/src/com/android/music/Music.java"],
    "dependencies": ["support"]
  },
  "support": {
    "class": ["JAVA_LIBRARIES"],
    "path": ["frameworks/support"],
    "srcs": ["frameworks/support/src/android/support/Support.java"]
  }
}`
	writeFile(t, root, "out/module-info.json", updated)

	summary, err := Generate(Options{RootDir: root, Targets: []string{"Music"}, Depth: 1})
	require.NoError(t, err)

	content, err := os.ReadFile(summary.IMLPaths[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "frameworks/support/src")
}

func TestGenerate_PerModuleProjects(t *testing.T) {
	root := setupWorkspace(t)

	summary, err := Generate(Options{
		RootDir:   root,
		Targets:   []string{"Music"},
		PerModule: true,
	})
	require.NoError(t, err)

	require.Len(t, summary.IMLPaths, 1)
	content, err := os.ReadFile(summary.IMLPaths[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "packages/apps/Music/src")
	assert.Contains(t, string(content), "frameworks/support/support.jar")

	// The dependency's unresolved jar must be scheduled for build.
	assert.Equal(t, []string{"frameworks/support/support-v4.jar"}, summary.BuildTargets)
}

func TestGenerate_UnknownTarget(t *testing.T) {
	root := setupWorkspace(t)

	_, err := Generate(Options{RootDir: root, Targets: []string{"ghost"}})
	assert.ErrorContains(t, err, "ghost")
}

func TestGenerate_NoTargets(t *testing.T) {
	_, err := Generate(Options{RootDir: t.TempDir()})
	assert.Error(t, err)
}

func TestGenerate_CustomOutDir(t *testing.T) {
	root := setupWorkspace(t)
	outDir := filepath.Join(root, "custom-out")
	require.NoError(t, os.MkdirAll(outDir, 0755))

	summary, err := Generate(Options{RootDir: root, Targets: []string{"Music"}, OutDir: outDir})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "Music.iml"), summary.IMLPaths[0])
}
