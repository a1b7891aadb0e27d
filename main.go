// main is the entry point for the repotwin CLI.
package main

import (
	"os"

	"github.com/samhoang/repotwin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
