package modinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModuleInfo(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "module-info.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeModuleInfo(t, `{
  "Settings": {
    "class": ["APPS"],
    "path": ["packages/apps/Settings"],
    "srcs": ["packages/apps/Settings/src/com/android/settings/Settings.java"],
    "srcjars": ["out/soong/.intermediates/packages/apps/Settings/aapt2.srcjar"],
    "dependencies": ["framework"],
    "installed": ["out/target/product/generic/system/priv-app/Settings/Settings.apk"]
  },
  "framework": {
    "class": ["JAVA_LIBRARIES"],
    "path": ["frameworks/base"],
    "jars": ["framework.jar"],
    "jarjar_rules": ["jarjar-rules.txt"]
  }
}`)

	modules, err := Load(path)
	require.NoError(t, err)
	require.Len(t, modules, 2)

	settings := modules["Settings"]
	assert.Equal(t, "Settings", settings.Name)
	assert.Equal(t, "packages/apps/Settings", settings.ModulePath())
	assert.True(t, settings.IsAppModule())
	assert.False(t, settings.HasJarjarRules())
	assert.Equal(t, []string{"framework"}, settings.Dependencies)

	framework := modules["framework"]
	assert.Equal(t, "framework", framework.Name)
	assert.False(t, framework.IsAppModule())
	assert.True(t, framework.HasJarjarRules())
}

func TestLoad_ExplicitModuleNameIsKept(t *testing.T) {
	path := writeModuleInfo(t, `{
  "framework": {"module_name": "framework-full", "path": ["frameworks/base"]}
}`)

	modules, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "framework-full", modules["framework"].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeModuleInfo(t, `{"broken": `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestBuildModule_ModulePathEmpty(t *testing.T) {
	assert.Equal(t, "", BuildModule{}.ModulePath())
}
