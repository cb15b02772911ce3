package main

import (
	"os"

	"github.com/empatlab/cnvcoach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
