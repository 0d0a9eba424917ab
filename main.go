package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/donfarescobar/poll-web-apps/cliparse"
	"github.com/donfarescobar/poll-web-apps/identity"
	"github.com/donfarescobar/poll-web-apps/router"
	"github.com/donfarescobar/poll-web-apps/store"
)

func main() {
	var err error

	// Load .env if present (optional in production)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to Firestore
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		slog.Error("firebase initialization failed", "error", err)
		os.Exit(1)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		slog.Error("firestore client creation failed", "error", err)
		os.Exit(1)
	}
	defer client.Close()
	slog.Info("Firestore ready", "project", cfg.ProjectID)

	// Create router
	st := store.NewFirestore(client)
	ids := identity.NewCookieProvider()
	mux := router.NewRouter(st, ids, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
