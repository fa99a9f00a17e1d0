// Package main is the entry point for the wptdiff CLI.
package main

import "wptdiff.dev/pkg/wptdiff/cmd"

func main() {
	cmd.Execute()
}
