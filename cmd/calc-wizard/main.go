package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

var version = "0.1.0"

func getDetailedVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	// A version set through ldflags wins over the module version.
	if version != "0.1.0" && version != "" {
		return version
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return version
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
