package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/internal/console"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/session"
)

// ExitError carries a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// main is the entrypoint for the gridpath application.
func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, loads the configuration and starts the console or the
// HTTP server.
func run(ctx context.Context, in io.Reader, out io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(out)
	flagSet.Usage = func() {
		fmt.Fprint(out, `
gridpath - grid pathfinding with BFS, DFS and A*.

Usage:
  gridpath [options]          interactive console
  gridpath [options] serve    HTTP API

Options:
`)
		flagSet.PrintDefaults()
	}

	envFlag := flagSet.String("env", "", "Path to a .env file. Defaults to ./.env when present.")
	algFlag := flagSet.String("algorithm", "", "Default algorithm: bfs, dfs or a_star. Overrides GRIDPATH_ALGORITHM.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: debug, info, warn or error. Overrides GRIDPATH_LOG_LEVEL.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	var envFiles []string
	if *envFlag != "" {
		envFiles = append(envFiles, *envFlag)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	if *algFlag != "" {
		if cfg.Algorithm, err = pathfind.ParseAlgorithm(*algFlag); err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
	}
	if *logLevelFlag != "" {
		if cfg.LogLevel, err = ctxlog.ParseLevel(*logLevelFlag); err != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("invalid -log-level %q", *logLevelFlag)}
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx = ctxlog.WithLogger(ctx, logger)

	command := "console"
	if flagSet.NArg() > 0 {
		command = flagSet.Arg(0)
	}
	logger.Debug("configuration loaded", "command", command, "algorithm", cfg.Algorithm.String(),
		"max_rows", cfg.MaxRows, "max_cols", cfg.MaxCols, "max_expansions", cfg.MaxExpansions)

	switch command {
	case "console":
		c := console.New(in, out,
			console.WithLimits(cfg.MaxRows, cfg.MaxCols),
			console.WithAlgorithm(cfg.Algorithm),
			console.WithSessionOptions(session.WithMaxExpansions(cfg.MaxExpansions)),
		)
		return c.Run(ctx)
	case "serve":
		return serve(ctx, cfg, logger)
	default:
		return &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q; use \"serve\" or no command", command)}
	}
}

// serve wires the controllers and blocks until ctx is canceled.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	gin.SetMode(cfg.GinMode)

	limits := api.Limits{
		MaxRows:       cfg.MaxRows,
		MaxCols:       cfg.MaxCols,
		MaxExpansions: cfg.MaxExpansions,
		Algorithm:     cfg.Algorithm,
	}
	router := api.NewRouter(api.Config{
		Addr:    cfg.Addr(),
		BaseURL: cfg.BaseURL,
		Controllers: []api.Controller{
			api.NewSessionController(api.NewStore(), limits),
			api.NewSearchController(limits),
		},
		Logger: logger,
	})
	return router.Run(ctx)
}
