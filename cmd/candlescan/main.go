package main

import (
	"os"

	"candlescan/cmd/candlescan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
