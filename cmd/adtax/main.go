package main

import (
	"os"

	"github.com/yunhoi129/adtax/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
