// vergen generates a versioned document-model package from a schema
// snapshot.
//
//	vergen -config vergen.yaml
//	vergen -config vergen.yaml -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/syssam/vergen/compiler"
	"github.com/syssam/vergen/compiler/gen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runWithArgs(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func runWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vergen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "vergen.yaml", "path to the generation config")
	envFile := fs.String("env", ".env", "dotenv file overriding the config")
	watch := fs.Bool("watch", false, "regenerate when the config or the schema snapshot changes")
	verbose := fs.Bool("v", false, "log debug output")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: vergen [-config vergen.yaml] [-watch]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		_, _ = fmt.Fprintln(stderr, "error: unexpected arguments")
		fs.Usage()
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level}))
	opts := []gen.Option{gen.WithLogger(logger)}

	if *watch {
		w := &compiler.Watcher{
			ConfigPath: *configPath,
			EnvFiles:   []string{*envFile},
			Options:    opts,
			Logger:     logger,
		}
		if err := w.Run(ctx); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	c, err := compiler.LoadConfig(*configPath, *envFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := compiler.Generate(ctx, c, opts...); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
