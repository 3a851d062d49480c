// Package main provides the roll binary, which rolls dice described in dice
// notation and prints each die and the total.
package main

import (
	"fmt"
	"os"

	"github.com/cory-johannsen/roll/cmd/roll/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "roll: %v\n", err)
		os.Exit(1)
	}
}
