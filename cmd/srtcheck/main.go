package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"srtcheck/internal/failure"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !failure.Silent(err) && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(failure.ExitCode(err))
	}
}
