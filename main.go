package main

import (
	"os"

	"github.com/revisio/revisio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
