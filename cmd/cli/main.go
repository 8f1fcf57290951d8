package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/tripplanner/internal/app"
	"github.com/vk/tripplanner/internal/cli"
)

// main is the entrypoint for the tripplanner application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW, os.LookupEnv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	planner := app.NewApp(in, outW, logW, appConfig)
	return planner.Run(context.Background())
}
