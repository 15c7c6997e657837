package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/termai-cli/termai/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()

	// Ctrl-C terminates immediately, whatever the run was doing.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Println("\nExiting.")
		os.Exit(0)
	}()

	root, err := cli.NewRootCmd(ctx, isVerbose())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr cli.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	for _, arg := range os.Args[1:] {
		if arg == "--debug" {
			return true
		}
	}
	return strings.EqualFold(os.Getenv("TERMAI_DEBUG"), "1") || strings.EqualFold(os.Getenv("TERMAI_DEBUG"), "true")
}
