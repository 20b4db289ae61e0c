package main

import (
	"os"

	"github.com/tris010/recruitment-system/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
