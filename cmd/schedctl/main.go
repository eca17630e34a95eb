// Command schedctl drives the four cadschedule pipeline stages and
// an ad hoc HTTP server from the command line, mirroring the HTTP
// surface documented in spec.md §6 as cobra subcommands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
