package main

import (
	"os"

	"github.com/dmitrymomot/formrules/cmd/formcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
