package main

import (
	"context"
	"log"
	"time"

	"proteintrack/backend/api"
	"proteintrack/backend/data"
	"proteintrack/backend/messaging"
	"proteintrack/backend/settings"
)

func main() {
	cfg := settings.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := data.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close(context.Background())

	messaging.InitBroadcaster()

	router := api.NewRouter(store, cfg)
	router.SetupAndRunApiServer(cfg.Port)
}
