package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/daybill/internal/cli"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env in the working directory feeds DAYBILL_* overrides.
	_ = godotenv.Load()

	app := &cli.App{
		StdinIsTerminal:  isTerminal(os.Stdin),
		StdoutIsTerminal: isTerminal(os.Stdout),
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
