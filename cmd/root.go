package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/idegen/cmd/modules"
	"github.com/LegacyCodeHQ/idegen/cmd/project"
	"github.com/LegacyCodeHQ/idegen/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "idegen",
	Short: "Generate IDE project definitions from the build graph",
	Long: `Idegen generates IntelliJ IDEA project definitions for modules of a
monorepo build graph. It reads the build system's module-info file,
reconstructs each module's source roots and jar dependencies by probing
the working tree, and writes the IDE project files.

Use 'idegen --help' to see all available commands, or 'idegen <command> --help'
for detailed information about a specific command.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(project.Cmd)
	rootCmd.AddCommand(modules.Cmd)
	rootCmd.AddCommand(watch.Cmd)

	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	// Update version field dynamically (in case it was set via ldflags)
	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)
}
