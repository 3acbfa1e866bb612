package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"PharmaKeeper/internal/cli/commands"
	reposqlite "PharmaKeeper/internal/cli/repo/sqlite"
	"PharmaKeeper/internal/config"
	"PharmaKeeper/internal/logger"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	sugar, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	//сброс буфера логгера
	defer func() { _ = sugar.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// одна запись на аптеку на весь процесс
	reg := reposqlite.NewRegistry(cfg.DataDir, sugar)
	app := commands.NewApp(cfg, reg, sugar)
	sugar.Debugw("Config", "DataDir", cfg.DataDir, "LogLevel", cfg.LogLevel)

	exitCode := commands.Dispatch(ctx, app, flag.Args())
	reg.ShutdownAll()
	if exitCode == 0 {
		return
	}
	_ = sugar.Sync()
	os.Exit(exitCode)
}

func printVersion() {
	fmt.Printf("Pharmacy inventory CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
