package main

import (
	"errors"
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	a := newApp()
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		if !errors.Is(err, errAnswerMismatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
