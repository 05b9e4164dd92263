package main

import "github.com/LegacyCodeHQ/idegen/cmd"

func main() {
	cmd.Execute()
}
