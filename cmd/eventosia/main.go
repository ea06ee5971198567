// Command eventosia is the terminal client for the EventosIA event
// management platform.
package main

import (
	"fmt"
	"os"

	"github.com/eventosia/client/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
