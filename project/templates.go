package project

// moduleIMLTemplate renders one IntelliJ module definition. Source roots and
// generated-resource dirs become file:// content roots, srcjar pseudo paths
// become jar:// content roots, and resolved jars become module libraries.
const moduleIMLTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<module type="JAVA_MODULE" version="4">
    <component name="NewModuleRootManager" inherit-compiler-output="true">
        <exclude-output />
{{- range .SourceFolders}}
        <content url="file://{{$.RootDir}}/{{.Dir}}">
            <sourceFolder url="file://{{$.RootDir}}/{{.Dir}}" isTestSource="{{.IsTest}}" />
        </content>
{{- end}}
{{- range .SrcjarPaths}}
        <content url="jar://{{$.RootDir}}/{{.}}">
            <sourceFolder url="jar://{{$.RootDir}}/{{.}}" isTestSource="false" />
        </content>
{{- end}}
        <orderEntry type="sourceFolder" forTests="false" />
{{- range .JarFiles}}
        <orderEntry type="module-library" exported="">
            <library>
                <CLASSES>
                    <root url="jar://{{$.RootDir}}/{{.}}!/" />
                </CLASSES>
                <JAVADOC />
                <SOURCES />
            </library>
        </orderEntry>
{{- end}}
        <orderEntry type="inheritedJdk" />
    </component>
</module>
`

// modulesXMLTemplate renders the project's module manifest.
const modulesXMLTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<project version="4">
    <component name="ProjectModuleManager">
        <modules>
{{- range .IMLPaths}}
            <module fileurl="file://{{.}}" filepath="{{.}}" />
{{- end}}
        </modules>
    </component>
</project>
`
