package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ivmolchanov/goshop/internal/client/api"
	"github.com/ivmolchanov/goshop/internal/client/cli"
	"github.com/ivmolchanov/goshop/internal/client/guard"
	"github.com/ivmolchanov/goshop/internal/client/session"
	"github.com/ivmolchanov/goshop/internal/client/storage/boltdb"
	"github.com/ivmolchanov/goshop/internal/models"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServerURL(), "Server URL")
	dbPath := flag.String("db", defaultDBPath(), "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	// Открываем BoltDB storage
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create database directory: %v\n", err)
		os.Exit(1)
	}
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Сессия поднимает сохраненную identity из BoltDB
	sess, err := session.New(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load session: %v\n", err)
		os.Exit(1)
	}

	// API клиент читает токен из сессии на каждом запросе
	apiClient := api.NewClient(*serverURL, sess)

	// Навигатор с guard'ами на защищенных поддеревьях маршрутов
	navigator := guard.NewNavigator("/login")
	navigator.Protect("/dashboard", guard.New(sess, apiClient, models.RoleUser))
	navigator.Protect("/dashboard/admin", guard.New(sess, apiClient, models.RoleAdmin))

	c := cli.New(apiClient, sess, boltStorage, navigator)
	c.Run(ctx, command, args[1:])
}

// defaultServerURL читает адрес сервера из окружения
func defaultServerURL() string {
	if url := os.Getenv("GOSHOP_SERVER_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

// defaultDBPath кладет базу клиента в домашний каталог пользователя
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "goshop-client.db"
	}
	return filepath.Join(home, ".goshop", "goshop-client.db")
}

func printVersion() {
	fmt.Printf("GoShop Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
