package main

import "github.com/abdul-hamid-achik/curlparse/apps/cli/cmd"

// Overridden at build time via -ldflags.
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cmd.Execute(version, buildTime)
}
