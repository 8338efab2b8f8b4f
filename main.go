package main

import (
	"os"

	"github.com/comphy-lab/sitesearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
