package main

import (
	"os"

	"github.com/kevlarmarlon20-eng/SwiftCargo/cmd/swiftcargo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
