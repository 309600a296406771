// Command fibcompare computes Fibonacci numbers with several independent
// engines and cross-checks and times them against one another.
package main

import (
	"context"
	"os"

	"github.com/agbru/fibcompare/internal/app"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Exit(app.ExitCodeFor(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
