package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"

	"condense/cmd"
	"condense/pkg/logging"
	"condense/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()

	// Flag parsing errors happen before the command sets up its logger.
	if logging.Logger == nil {
		if setupErr := logging.Setup(0, "condense", version.Get().Version); setupErr != nil {
			log.Fatalf("Failed to initialize logger: %v", setupErr)
		}
	}
	logger := logging.Logger

	if err != nil {
		syncLogger(logger)
		logger.Fatal("condense failed", zap.Error(err))
	}
	syncLogger(logger)
}

// syncLogger flushes the logger when stderr can be synced.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
