package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/willowmind/willow/internal/config"
	"github.com/willowmind/willow/internal/db"
	"github.com/willowmind/willow/internal/llm"
	"github.com/willowmind/willow/internal/notifier"
	"github.com/willowmind/willow/internal/repository"
	"github.com/willowmind/willow/internal/worker"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	stores := db.NewStores(database)
	chatClient := llm.NewChatClient(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.ChatModel)
	repos := repository.NewRepositories(stores, chatClient)

	var notify notifier.Notifier = notifier.Log{}
	if cfg.NotifyEndpoint != "" {
		notify = notifier.NewWebhook(cfg.NotifyEndpoint)
	}
	reminder := worker.NewReminder(repos.Facts, repos.Moods, repos.Journals, notify)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("willow reminder daemon running (db: %s, interval: %s, tz: %s)",
		cfg.DBPath, cfg.ReminderInterval, location.String())

	ticker := time.NewTicker(cfg.ReminderInterval)
	defer ticker.Stop()

	reminder.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Printf("shutting down")
			return
		case <-ticker.C:
			reminder.RunOnce(ctx)
		}
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
