// Command rulecat merges numbered documentation fragments into a single
// context file. It exits with status 1 on any error.
package main

import (
	"os"

	"github.com/grampay/rulecat/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
