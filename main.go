package main

import (
	"log"

	"onboarding-bot/bot"
	"onboarding-bot/config"
	"onboarding-bot/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	bot.Run(cfg, handlers.Register)
}
