package main

import (
	"os"

	"github.com/infinitelife/pulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
