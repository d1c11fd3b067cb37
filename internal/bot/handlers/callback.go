package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aleksmelnikov/fitness-helper/internal/bot/menus"
	"github.com/aleksmelnikov/fitness-helper/internal/bot/state"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

// CallbackHandler handles callback query messages
type CallbackHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CallbackHandler {
	return &CallbackHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a callback query. The menu buttons mirror the commands:
// each puts the session into the matching awaiting-input state.
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery, user *domain.UserProfile) error {
	// Answer the callback query first
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := h.api.Request(callback); err != nil {
		return err
	}

	chatID := query.Message.Chat.ID

	switch query.Data {
	case "log_water":
		h.stateManager.SetUserState(user.TelegramID, state.WaitingForWaterAmount)
		return sendText(h.api, chatID, "Сколько мл воды вы выпили?")
	case "log_food":
		h.stateManager.SetUserState(user.TelegramID, state.WaitingForFoodName)
		return sendText(h.api, chatID, "Что вы съели? Напишите название продукта.")
	case "log_workout":
		h.stateManager.SetUserState(user.TelegramID, state.WaitingForWorkout)
		return sendText(h.api, chatID, "Какая тренировка и сколько минут? Например: бег 30")
	case "check_progress":
		progress, err := h.deps.Tracking.CheckProgress(ctx, user.TelegramID)
		if err != nil {
			return sendServiceError(h.api, chatID, err)
		}
		return menus.SendProgress(h.api, chatID, progress)
	case "profile":
		return menus.SendProfileSummary(h.api, chatID, user)
	case "set_profile":
		return startProfileForm(h.api, h.stateManager, chatID, user.TelegramID)
	case "main_menu":
		h.stateManager.SetUserState(user.TelegramID, state.None)
		h.stateManager.ClearTempData(user.TelegramID)
		return menus.SendMainMenu(h.api, chatID)
	default:
		return sendText(h.api, chatID, "Неизвестное действие. Используйте /help.")
	}
}
