package main

import (
	"os"

	"github.com/msto63/asymptotix/cmd/asymp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
