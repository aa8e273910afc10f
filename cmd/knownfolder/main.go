// Package main provides the knownfolder CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "knownfolder:", err)
		os.Exit(exitCode(err))
	}
}
