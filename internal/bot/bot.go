package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aleksmelnikov/fitness-helper/internal/bot/handlers"
	"github.com/aleksmelnikov/fitness-helper/internal/bot/state"
	"github.com/aleksmelnikov/fitness-helper/internal/logger"
)

// Bot runs the long-polling loop and dispatches updates to the handlers.
type Bot struct {
	api           *tgbotapi.BotAPI
	updateHandler *handlers.UpdateHandler
}

func NewBot(token string, deps handlers.Dependencies, stateManager state.StateManager) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Infof("Bot authorized on account %s", api.Self.UserName)
	return &Bot{
		api:           api,
		updateHandler: handlers.NewUpdateHandler(api, deps, stateManager),
	}, nil
}

// Start polls for updates until the context is cancelled. Each update is
// handled in its own goroutine so one user's slow external lookup does not
// stall everyone else; per-user ordering is protected by the store.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates...")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down...")
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			go func(update tgbotapi.Update) {
				if err := b.updateHandler.Handle(ctx, update); err != nil {
					logger.Error("error handling update", "error", err)
				}
			}(update)
		}
	}
}
