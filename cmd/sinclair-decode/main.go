// Sinclair-decode decodes the UART frames exchanged between a Sinclair/Gree
// style air conditioner and its network gateway.
//
// It reads hex dumps in any common notation ("7E 7E 2F 01", "7E.7E.2F.01",
// "7e7e2f01"), finds the frames, validates their checksums and prints every
// packed field of the payload in readable form.
//
// Usage:
//
//	sinclair-decode [hex bytes...] [flags]
//	sinclair-decode --file capture.log
//	sinclair-decode stats capture.log
//	sinclair-decode browse capture.log
//
// With no arguments and no --file, hex text is read from stdin.
// See 'sinclair-decode --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/muurk/sinclair-decoder/internal/logging"
)

func main() {
	// Silent unless SINCLAIR_LOG_LEVEL is set; commands re-initialize from config
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		logging.Error("Command failed", zap.Error(err))
	}
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
