// keyscan finds every occurrence of a set of literal patterns in text,
// in a single pass, reporting line, column, and surrounding context.
package main

import (
	"os"

	"github.com/corey/keyscan/cmd/keyscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
