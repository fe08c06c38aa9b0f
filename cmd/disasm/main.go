// Command disasm is the CLI boundary of spec.md §6: it loads a binary,
// drives the command layer and pipeline, and exposes the project through
// either a one-shot render, a label/settings import-export round trip, or
// the serial command queue of §5 over stdio or a TCP socket.
package main

import "github.com/charmbracelet/log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
