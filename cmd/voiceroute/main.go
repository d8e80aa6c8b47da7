package main

import (
	"os"

	"github.com/sperrin/voiceroute/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
