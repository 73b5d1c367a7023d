// Package main is the steeple entrypoint.
package main

import "github.com/graceworks/steeple/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
