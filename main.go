package main

import (
	"os"

	"github.com/robalobadob/wordle/apps/go-engine/internal/cli"
	"github.com/robalobadob/wordle/apps/go-engine/internal/config"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	config.LoadDotEnv()
	cli.Version = version
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
