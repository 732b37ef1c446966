package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/kirlot/internal/cli"
	"codeberg.org/snonux/kirlot/internal/convert"
	"codeberg.org/snonux/kirlot/internal/history"
	"codeberg.org/snonux/kirlot/internal/logging"
	"codeberg.org/snonux/kirlot/internal/processor"
	"codeberg.org/snonux/kirlot/internal/repl"
	"codeberg.org/snonux/kirlot/internal/server"
	"codeberg.org/snonux/kirlot/internal/translit"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create commands
	rootCmd := cli.CreateRootCommand(flags)
	serveCmd := cli.CreateServeCommand(flags)
	replCmd := cli.CreateReplCommand(flags)
	rootCmd.AddCommand(serveCmd, replCmd)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		cli.LoadConfig(flags)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}
	serveCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, flags)
	}
	replCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	logger := logging.New(flags.LogLevel, os.Stderr)
	defer logger.Sync()

	proc := processor.NewProcessor(flags,
		processor.WithInput(cmd.InOrStdin()),
		processor.WithOutput(cmd.OutOrStdout()),
		processor.WithErrorOutput(cmd.ErrOrStderr()),
		processor.WithLogger(logger),
	)
	defer proc.Close()

	err := proc.Run(cmd.Context(), args)
	if errors.Is(err, processor.ErrCheckFailed) {
		// The summary already explains the failure
		cmd.SilenceUsage = true
	}
	return err
}

func runRepl(cmd *cobra.Command, flags *cli.Flags) error {
	logger := logging.New(flags.LogLevel, os.Stderr)
	defer logger.Sync()

	dir, err := translit.ParseDirection(flags.Direction)
	if err != nil {
		return err
	}

	service, closeHistory, err := newService(flags, logger)
	if err != nil {
		return err
	}
	defer closeHistory()

	reader, err := repl.NewReadline("kirlot > ")
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true
	session := repl.New(service, reader, cmd.OutOrStdout(), dir, flags.MaxWords)
	return session.Run(cmd.Context())
}

func runServe(cmd *cobra.Command, flags *cli.Flags) error {
	logger := logging.New(flags.LogLevel, os.Stderr)
	defer logger.Sync()

	service, closeHistory, err := newService(flags, logger)
	if err != nil {
		return err
	}
	defer closeHistory()

	srv := server.New(server.Config{
		Addr:         flags.Addr,
		ReadTimeout:  flags.ReadTimeout,
		WriteTimeout: flags.WriteTimeout,
		MaxBodyBytes: flags.MaxBodyBytes,
		MaxWords:     flags.MaxWords,
	}, service, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.SilenceUsage = true
	return srv.Run(ctx)
}

// newService builds the conversion service, recording into the history
// database through a circuit breaker when history is enabled.
func newService(flags *cli.Flags, logger *zap.Logger) (*convert.Service, func(), error) {
	if !flags.History {
		return convert.NewService(nil, convert.WithLogger(logger)), func() {}, nil
	}

	store, err := history.Open(flags.HistoryDB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history: %w", err)
	}
	logger.Info("recording conversions", zap.String("history_db", store.Path()))

	service := convert.NewService(nil,
		convert.WithLogger(logger),
		convert.WithRecorder(history.NewGuard(store, logger)),
	)
	return service, func() { store.Close() }, nil
}
