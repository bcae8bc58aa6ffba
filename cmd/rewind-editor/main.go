// Package main is the entry point for the rewind demo editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/rewind/internal/config"
	"github.com/dshills/rewind/internal/editor"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Keys: Ctrl+Z undo, Ctrl+Y redo, Ctrl+S save, Ctrl+Q quit")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	path := flag.Arg(0)

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := editor.NewFileLogger(cfg.Editor.LogFile, editor.LogLevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app, err := editor.NewApp(path, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
