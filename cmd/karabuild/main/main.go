package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/karabuild/cmd/karabuild"
)

func main() {
	rootCmd := karabuild.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, karabuild.FormatError(err))
		os.Exit(1)
	}
}
