package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/algokit/cmd/algokit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil && !errors.Is(exitErr.Err, commands.ErrNegativeResult) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
