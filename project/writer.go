// Package project serializes resolved module sets into IntelliJ IDEA
// project files.
package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/LegacyCodeHQ/idegen/locator"
)

var (
	imlTemplate     = template.Must(template.New("iml").Parse(moduleIMLTemplate))
	modulesTemplate = template.Must(template.New("modules").Parse(modulesXMLTemplate))
)

// sourceFolder is one rendered <sourceFolder> entry.
type sourceFolder struct {
	Dir    string
	IsTest bool
}

type imlData struct {
	RootDir       string
	SourceFolders []sourceFolder
	SrcjarPaths   []string
	JarFiles      []string
}

type modulesData struct {
	IMLPaths []string
}

// GenerateModuleIML renders the module definition XML for one resolved
// module. Missing jars are not rendered; they are reported by the caller.
func GenerateModuleIML(rootDir string, result *locator.Result) (string, error) {
	data := imlData{
		RootDir:     rootDir,
		SrcjarPaths: result.SrcjarPaths.Sorted(),
		JarFiles:    result.JarFiles.Sorted(),
	}
	for _, dir := range result.SrcDirs.Sorted() {
		data.SourceFolders = append(data.SourceFolders, sourceFolder{Dir: dir})
	}
	for _, dir := range result.RJavaPaths.Sorted() {
		data.SourceFolders = append(data.SourceFolders, sourceFolder{Dir: dir})
	}
	for _, dir := range result.TestDirs.Sorted() {
		data.SourceFolders = append(data.SourceFolders, sourceFolder{Dir: dir, IsTest: true})
	}

	var buf bytes.Buffer
	if err := imlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render module iml: %w", err)
	}
	return buf.String(), nil
}

// GenerateModulesXML renders the project manifest referencing the given
// module definition files.
func GenerateModulesXML(imlPaths []string) (string, error) {
	var buf bytes.Buffer
	if err := modulesTemplate.Execute(&buf, modulesData{IMLPaths: imlPaths}); err != nil {
		return "", fmt.Errorf("failed to render modules.xml: %w", err)
	}
	return buf.String(), nil
}

// WriteModuleIML writes <name>.iml under outDir and returns its path.
func WriteModuleIML(outDir, rootDir, name string, result *locator.Result) (string, error) {
	content, err := GenerateModuleIML(rootDir, result)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outDir, err)
	}
	imlPath := filepath.Join(outDir, name+".iml")
	if err := os.WriteFile(imlPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", imlPath, err)
	}
	return imlPath, nil
}

// WriteModulesXML writes the project manifest under outDir/.idea.
func WriteModulesXML(outDir string, imlPaths []string) (string, error) {
	content, err := GenerateModulesXML(imlPaths)
	if err != nil {
		return "", err
	}
	ideaDir := filepath.Join(outDir, ".idea")
	if err := os.MkdirAll(ideaDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", ideaDir, err)
	}
	xmlPath := filepath.Join(ideaDir, "modules.xml")
	if err := os.WriteFile(xmlPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", xmlPath, err)
	}
	return xmlPath, nil
}
