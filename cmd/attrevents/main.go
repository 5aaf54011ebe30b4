package main

import (
	"os"

	"github.com/theodox/attributeEvents/cmd/attrevents/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
