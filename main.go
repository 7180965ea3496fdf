package main

import (
	"flag"
	"fmt"
	"os"

	"bguard/internal/di"
	"bguard/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to YAML config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "duplicate app log to stderr")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "bguard: %s\n", err)
		os.Exit(1)
	}
}
