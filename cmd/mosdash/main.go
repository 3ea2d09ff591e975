package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/five82/mosdash/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(app.Run).ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	_, _ = color.New(color.FgRed, color.Bold).Fprint(w, "mosdash: ")
	_, _ = fmt.Fprintln(w, err)
}
