package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/wordtrie/pkg/cli"
	"github.com/khalid-nowaf/wordtrie/pkg/logger"
)

func main() {
	var root cli.CLI
	ctx := kong.Parse(&root, cli.Options()...)

	log := logger.New(logger.Options{Level: root.LogLevel, Console: os.Stderr, File: root.LogFile})
	err := ctx.Run(&cli.Context{Log: log, Out: os.Stdout})
	log.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
