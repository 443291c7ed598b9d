// Command stubserver runs an in-memory double of the remote verification
// service, useful for local development of the CLI.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veriscan/veriscan-go/internal/logging"
	"github.com/veriscan/veriscan-go/internal/stubserver"
)

func main() {
	addr := flag.String("a", ":8000", "listen address")
	flag.Parse()
	if v, ok := os.LookupEnv("VERISCAN_STUB_ADDR"); ok {
		*addr = v
	}

	secret := os.Getenv("VERISCAN_STUB_SECRET")
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			slog.Error("failed to generate signing secret", "err", err)
			os.Exit(1)
		}
		secret = hex.EncodeToString(buf)
	}

	slogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	log := logging.NewSlogLogger(slogger)

	srv := &http.Server{
		Addr:    *addr,
		Handler: stubserver.New(secret, log).Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slogger.Info("stub server listening", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
