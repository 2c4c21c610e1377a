package main

import (
	"os"

	"github.com/jadenpxrk/copycode/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
