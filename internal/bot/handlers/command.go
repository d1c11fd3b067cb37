package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aleksmelnikov/fitness-helper/internal/bot/menus"
	"github.com/aleksmelnikov/fitness-helper/internal/bot/state"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
	"github.com/aleksmelnikov/fitness-helper/internal/logger"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *CommandHandler {
	return &CommandHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a command message. Logging commands accept their argument
// inline ("/log_water 300"); without it the bot asks and waits.
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *domain.UserProfile) error {
	logger.Infof("Handling command %s from user %d", message.Command(), user.TelegramID)

	chatID := message.Chat.ID
	args := message.CommandArguments()

	switch message.Command() {
	case "start":
		h.stateManager.SetUserState(user.TelegramID, state.None)
		if err := sendText(h.api, chatID, "Добро пожаловать! Я ваш бот."); err != nil {
			return err
		}
		return menus.SendMainMenu(h.api, chatID)
	case "help":
		return h.handleHelp(chatID)
	case "profile":
		return menus.SendProfileSummary(h.api, chatID, user)
	case "set_profile":
		return startProfileForm(h.api, h.stateManager, chatID, user.TelegramID)
	case "log_water":
		return h.handleLogWater(ctx, chatID, user, args)
	case "log_food":
		return h.handleLogFood(ctx, chatID, user, args)
	case "log_workout":
		return h.handleLogWorkout(ctx, chatID, user, args)
	case "check_progress":
		progress, err := h.deps.Tracking.CheckProgress(ctx, user.TelegramID)
		if err != nil {
			return sendServiceError(h.api, chatID, err)
		}
		return menus.SendProgress(h.api, chatID, progress)
	default:
		return h.handleUnknownCommand(chatID)
	}
}

func (h *CommandHandler) handleLogWater(ctx context.Context, chatID int64, user *domain.UserProfile, args string) error {
	if args == "" {
		h.stateManager.SetUserState(user.TelegramID, state.WaitingForWaterAmount)
		return sendText(h.api, chatID, "Сколько мл воды вы выпили?")
	}

	amount, err := parseAmount(args)
	if err != nil {
		return sendText(h.api, chatID, "Укажите количество воды в мл, например: /log_water 300")
	}

	result, err := h.deps.Tracking.LogWater(ctx, user.TelegramID, amount)
	if err != nil {
		return sendServiceError(h.api, chatID, err)
	}
	return sendWaterResult(h.api, chatID, amount, result)
}

func (h *CommandHandler) handleLogFood(ctx context.Context, chatID int64, user *domain.UserProfile, args string) error {
	if args == "" {
		h.stateManager.SetUserState(user.TelegramID, state.WaitingForFoodName)
		return sendText(h.api, chatID, "Что вы съели? Напишите название продукта.")
	}
	return resolveFoodAndAskGrams(ctx, h.api, h.deps, h.stateManager, chatID, user.TelegramID, args)
}

func (h *CommandHandler) handleLogWorkout(ctx context.Context, chatID int64, user *domain.UserProfile, args string) error {
	if args == "" {
		h.stateManager.SetUserState(user.TelegramID, state.WaitingForWorkout)
		return sendText(h.api, chatID, "Какая тренировка и сколько минут? Например: бег 30")
	}

	workoutType, minutes, err := parseWorkoutArgs(args)
	if err != nil {
		return sendText(h.api, chatID, "Укажите тип тренировки и минуты, например: /log_workout бег 30")
	}

	result, err := h.deps.Tracking.LogWorkout(ctx, user.TelegramID, workoutType, minutes)
	if err != nil {
		return sendServiceError(h.api, chatID, err)
	}
	return sendWorkoutResult(h.api, chatID, workoutType, minutes, result)
}

// handleHelp handles the /help command
func (h *CommandHandler) handleHelp(chatID int64) error {
	text := `Я могу ответить на команды /start, /help, /log_water, /log_food, /log_workout, /check_progress, /profile и /set_profile.

/set_profile - заполнить профиль
/profile - показать профиль
/log_water <мл> - записать выпитую воду
/log_food <продукт> - записать еду
/log_workout <тип> <мин> - записать тренировку
/check_progress - прогресс за сегодня`

	return sendText(h.api, chatID, text)
}

// handleUnknownCommand handles unknown commands
func (h *CommandHandler) handleUnknownCommand(chatID int64) error {
	return sendText(h.api, chatID, "Неизвестная команда. Используйте /help для просмотра доступных команд.")
}

// startProfileForm begins the set-profile flow: name, height, weight, age,
// activity, city, one message each.
func startProfileForm(api *tgbotapi.BotAPI, sm state.StateManager, chatID, telegramID int64) error {
	sm.ClearTempData(telegramID)
	sm.SetUserState(telegramID, state.WaitingForName)
	return sendText(api, chatID, "Как вас зовут?")
}

// resolveFoodAndAskGrams is phase one of food logging: resolve the name, show
// the energy density and wait for grams. A miss performs no mutation and does
// not enter the awaiting-grams state.
func resolveFoodAndAskGrams(ctx context.Context, api *tgbotapi.BotAPI, deps Dependencies, sm state.StateManager, chatID, telegramID int64, name string) error {
	info, found, err := deps.Tracking.ResolveFood(ctx, name)
	if err != nil {
		return sendServiceError(api, chatID, err)
	}
	if !found {
		sm.SetUserState(telegramID, state.None)
		return sendText(api, chatID, fmt.Sprintf("Не нашёл продукт «%s». Попробуйте другое название.", name))
	}

	sm.SetTempData(telegramID, state.TempFoodName, info.Name)
	sm.SetTempData(telegramID, state.TempCalPer100g, info.CaloriesPer100g)
	sm.SetUserState(telegramID, state.WaitingForFoodGrams)

	return sendText(api, chatID,
		fmt.Sprintf("%s — %.1f ккал на 100 г.\nСколько грамм вы съели?", info.Name, info.CaloriesPer100g))
}
