// Package main is the entry point for the dictmatch CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/dictmatch/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
