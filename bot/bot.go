package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"onboarding-bot/command"
	"onboarding-bot/models"
	"onboarding-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Bot encapsulates the bot's state.
type Bot struct {
	Session *discordgo.Session
	Config  *models.Config
}

// NewBot creates and initializes a new Bot instance.
func NewBot(cfg *models.Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	// Member joins and the welcome-channel messages both need the members
	// intent plus message content.
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	return &Bot{Session: dg, Config: cfg}, nil
}

// Start opens the bot's session, registers slash commands and launches the
// scheduler.
func (b *Bot) Start(registerHandlers func(*Bot)) error {
	registerHandlers(b)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	utils.InitLogger(b.Session, b.Config.LogChannelID)

	for _, def := range command.GetCommandDefinitions() {
		if _, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, "", def); err != nil {
			log.Printf("Cannot create '%v' command: %v", def.Name, err)
		}
	}

	startScheduler(b.Session, b.Config)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the bot's session.
func (b *Bot) Stop() {
	stopScheduler()
	if b.Session != nil {
		b.Session.Close()
	}
	fmt.Println("Bot stopped gracefully.")
}

// Run is the main entry point for the bot application.
func Run(cfg *models.Config, registerHandlers func(*Bot)) {
	bot, err := NewBot(cfg)
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	if err := bot.Start(registerHandlers); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}
