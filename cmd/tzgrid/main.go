package main

import (
	"os"
	_ "time/tzdata"

	"github.com/dpb1/tzgrid/cmd/tzgrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
