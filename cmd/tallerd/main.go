package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/darwincel7/taller-sub001/internal/config"
	"github.com/darwincel7/taller-sub001/internal/deps"
	"github.com/darwincel7/taller-sub001/internal/server"
	"github.com/darwincel7/taller-sub001/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewConfig()
	deps := deps.NewDependencies(config.Key, config.TokenTTL)

	storage, err := storage.NewPostgreStorage(ctx, config.DatabaseURI)
	if err != nil {
		deps.Logger.Fatal(err)
	}

	srv := server.NewServer(storage, config, deps)
	if err := srv.Run(ctx); err != nil {
		deps.Logger.Fatal(err)
	}
}
