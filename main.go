package main

import (
	"os"

	"github.com/abhisek/codecade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
