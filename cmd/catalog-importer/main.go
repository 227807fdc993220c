package main

import (
	"context"
	"flag"
	"log"
	"os"

	catalogimporter "github.com/louisbranch/sprawlsheet/internal/cmd/catalogimporter"
	"github.com/louisbranch/sprawlsheet/internal/platform/config"
)

func main() {
	cfg, err := catalogimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix("[CATALOG] ")

	config.ExitError("Error", catalogimporter.Run(context.Background(), cfg, os.Stdout))
}
