package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kharcha-app/kharcha/internal/auth"
	"github.com/kharcha-app/kharcha/internal/config"
	"github.com/kharcha-app/kharcha/internal/email"
	"github.com/kharcha-app/kharcha/internal/http"
	"github.com/kharcha-app/kharcha/internal/service"
	"github.com/kharcha-app/kharcha/internal/storage/sqlite"
	"github.com/kharcha-app/kharcha/pkg/logging"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Env)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var sender email.Sender = email.LogSender{}
	if cfg.SMTP.Host != "" {
		sender = email.NewSMTPSender(
			cfg.SMTP.Host,
			strconv.Itoa(cfg.SMTP.Port),
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.From,
			cfg.SMTP.FromName,
			cfg.OTPTTL,
		)
		slog.Info("SMTP sender configured", "host", cfg.SMTP.Host)
	} else {
		slog.Warn("No SMTP host configured, codes will be logged instead of emailed")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewAuthenticator(store, sender, tokens, cfg.OTPTTL)
	ledger := service.NewLedger(store)

	server := http.NewServer(cfg, authenticator, ledger, store)
	slog.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
	if err := server.Run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
