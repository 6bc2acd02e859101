package main

import (
	"os"

	"github.com/cursornexus/cursorchat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
