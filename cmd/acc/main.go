// Package main is the entry point for the acc CLI.
package main

import (
	"os"

	"github.com/sthwalo/acc-sub020/cmd/acc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
