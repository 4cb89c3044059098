package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kinomap-tg-bot/internal/bot"
	"kinomap-tg-bot/internal/config"
	"kinomap-tg-bot/internal/storage"
)

const updateTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := storage.NewMongo(connectCtx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}
	api.Debug = cfg.BotDebug
	log.Printf("authorized as @%s", api.Self.UserName)

	b := bot.New(api, db, db)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := api.GetUpdatesChan(u)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case upd := <-updates:
			go func(upd tgbotapi.Update) {
				ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
				defer cancel()
				b.HandleUpdate(ctx, upd)
			}(upd)
		case <-quit:
			log.Println("shutting down...")
			api.StopReceivingUpdates()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = db.Close(ctx)
			cancel()
			log.Println("stopped")
			return
		}
	}
}
