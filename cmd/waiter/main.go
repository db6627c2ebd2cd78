// Command waiter is the waiter console: one-shot commands against the
// restaurant backend, a foreground ready-order watcher and the local shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
