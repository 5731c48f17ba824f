package main

import (
	"os"

	"github.com/pranav244872/jobboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
