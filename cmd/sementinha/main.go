package main

import (
	"os"

	"sementinha/cmd/sementinha/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
