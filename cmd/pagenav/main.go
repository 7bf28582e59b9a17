package main

import (
	"os"

	"github.com/jask/pagenav/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
