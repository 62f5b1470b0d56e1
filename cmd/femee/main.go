package main

import (
	"log"
	"os"

	"femee-arena-client/internal/cli"
)

func main() {
	log.SetFlags(log.LstdFlags)

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
