package main

import (
	"chat-gate/auth"
	"chat-gate/domain"
	"chat-gate/infrastructure/hipchat"
	"chat-gate/internal"
	"chat-gate/repositories"
	"chat-gate/services"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the shell or the calling deployment script.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitGate    = 3
	exitUsage   = 64
)

const usage = `usage: hipgate <command> [flags]

commands:
  send        post a message to one or more rooms
  check-room  verify that one of the required people is present and available
  run         run a command wrapped with notifications or a presence gate
  history     list the notifications recorded in HISTORY_PATH
`

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "hipgate: %v\n", err)
	}
	os.Exit(code)
}

// app carries everything a subcommand needs.
type app struct {
	log      *slog.Logger
	notifier *services.NotifierService
	presence *services.PresenceService
	history  repositories.INotificationRepository
}

func run(args []string) (int, error) {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage, nil
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. History (BadgerDB), optional
	var history repositories.INotificationRepository
	if config.HistoryPath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.HistoryPath).WithLoggingLevel(badger.WARNING))
		if err != nil {
			return exitRuntime, fmt.Errorf("history opening failed: %w", err)
		}
		defer func() {
			log.Debug("Closing history...")
			_ = db.Close()
		}()
		history = repositories.NewNotificationRepository(db, log)
	}

	// 3. Credentials & client
	credentialFile, err := internal.ExpandHome(config.CredentialFile)
	if err != nil {
		return exitConfig, err
	}
	credentials := auth.NewCachedProvider(auth.Chain(
		auth.StaticSource(config.HipchatToken),
		auth.FileSource(credentialFile, log),
		auth.PromptSource(os.Stdin, os.Stderr, credentialFile),
	))
	client := hipchat.NewClient(hipchat.Config{
		BaseURL: config.HipchatURL,
		Timeout: config.Timeout,
		DryRun:  config.Debug,
	}, credentials, log)

	runnerEnv := domain.RunnerEnv{User: currentUser(config, log), Debug: config.Debug}
	a := &app{
		log:      log,
		notifier: services.NewNotifierService(client, services.NewFormatter(runnerEnv, log), history, log),
		presence: services.NewPresenceService(client, log, config.PresenceWorkers),
		history:  history,
	}

	// 4. Dispatch
	switch args[0] {
	case "send":
		return a.send(ctx, args[1:])
	case "check-room":
		return a.checkRoom(ctx, args[1:])
	case "run":
		return a.runCommand(ctx, args[1:])
	case "history":
		return a.listHistory(args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return exitUsage, fmt.Errorf("unknown command %q", args[0])
	}
}
