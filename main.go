package main

import (
	"os"

	"github.com/elisdimitrova/psysite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
