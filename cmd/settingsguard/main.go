package main

import (
	"os"
)

func main() {
	rootCmd := NewRootCmd()
	os.Exit(exitCode(rootCmd.Execute(), os.Stderr))
}
