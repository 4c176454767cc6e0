// cmd/bank/main.go

// Command bank runs the ABC Bank interactive session on stdin/stdout.
// Configuration comes from BANK_* environment variables; logs go to a
// rotating file and, when BANK_METRICS_FILE is set, counters are written
// there on exit or on SIGINT/SIGTERM.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"abcbank/internal/bank"
	"abcbank/internal/config"
	"abcbank/internal/crypto"
	"abcbank/internal/logger"
	"abcbank/internal/metrics"
	"abcbank/internal/shell"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.LogDir, "bank", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Close()

	b := bank.NewBank(newHasher(cfg), log)

	flush := func() {
		if cfg.MetricsFile == "" {
			return
		}
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Errorf("metrics flush failed: %v", err)
		}
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		log.WithFields(logger.Fields{"signal": sig.String()}).Info("interrupted")
		flush()
		_ = log.Close()
		os.Exit(0)
	}()

	log.WithFields(logger.Fields{"hashing": cfg.PasswordHashing}).Info("bank session starting")

	if err := shell.New(b, os.Stdin, os.Stdout, log).Run(); err != nil {
		log.Errorf("session ended with error: %v", err)
		flush()
		return 1
	}

	flush()
	log.Info("bank session finished")
	return 0
}

func newHasher(cfg config.Config) crypto.PasswordHasher {
	if cfg.PasswordHashing == config.HashingBcrypt {
		return crypto.NewBcryptHasher(cfg.BcryptCost)
	}
	return crypto.PlainHasher{}
}
