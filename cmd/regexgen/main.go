package main

import (
	"os"

	"github.com/coregx/regexgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
