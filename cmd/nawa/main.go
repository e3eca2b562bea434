// Command nawa runs the نواة (Nawa) Arabic-keyword interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/tofey-ar/nawa/cmd/nawa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
