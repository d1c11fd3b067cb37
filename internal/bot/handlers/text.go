package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aleksmelnikov/fitness-helper/internal/bot/menus"
	"github.com/aleksmelnikov/fitness-helper/internal/bot/state"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

// TextHandler handles text messages
type TextHandler struct {
	api          *tgbotapi.BotAPI
	deps         Dependencies
	stateManager state.StateManager
}

// NewTextHandler creates a new text handler
func NewTextHandler(api *tgbotapi.BotAPI, deps Dependencies, stateManager state.StateManager) *TextHandler {
	return &TextHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
	}
}

// Handle processes a text message according to the user's current state.
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *domain.UserProfile) error {
	userState := h.stateManager.GetUserState(user.TelegramID)

	switch userState {
	case state.WaitingForName:
		return h.handleName(message, user)
	case state.WaitingForHeight:
		return h.handleHeight(message, user)
	case state.WaitingForWeight:
		return h.handleWeight(message, user)
	case state.WaitingForAge:
		return h.handleAge(message, user)
	case state.WaitingForActivity:
		return h.handleActivity(message, user)
	case state.WaitingForCity:
		return h.handleCity(ctx, message, user)
	case state.WaitingForWaterAmount:
		return h.handleWaterAmount(ctx, message, user)
	case state.WaitingForFoodName:
		return resolveFoodAndAskGrams(ctx, h.api, h.deps, h.stateManager, message.Chat.ID, user.TelegramID, message.Text)
	case state.WaitingForFoodGrams:
		return h.handleFoodGrams(ctx, message, user)
	case state.WaitingForWorkout:
		return h.handleWorkout(ctx, message, user)
	default:
		return h.handleDefaultText(message.Chat.ID)
	}
}

func (h *TextHandler) handleName(message *tgbotapi.Message, user *domain.UserProfile) error {
	h.stateManager.SetTempData(user.TelegramID, state.TempName, message.Text)
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForHeight)
	return sendText(h.api, message.Chat.ID, "Введите ваш рост (в см):")
}

func (h *TextHandler) handleHeight(message *tgbotapi.Message, user *domain.UserProfile) error {
	height, err := parseAmount(message.Text)
	if err != nil {
		return sendText(h.api, message.Chat.ID, "Пожалуйста, введите рост числом в сантиметрах (например: 175)")
	}

	h.stateManager.SetTempData(user.TelegramID, state.TempHeight, height)
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForWeight)
	return sendText(h.api, message.Chat.ID, "Введите ваш вес:")
}

func (h *TextHandler) handleWeight(message *tgbotapi.Message, user *domain.UserProfile) error {
	weight, err := parseAmount(message.Text)
	if err != nil {
		return sendText(h.api, message.Chat.ID, "Пожалуйста, введите вес числом в килограммах (например: 70)")
	}

	h.stateManager.SetTempData(user.TelegramID, state.TempWeight, weight)
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForAge)
	return sendText(h.api, message.Chat.ID, "Введите ваш возраст:")
}

func (h *TextHandler) handleAge(message *tgbotapi.Message, user *domain.UserProfile) error {
	age, err := parsePositiveInt(message.Text)
	if err != nil {
		return sendText(h.api, message.Chat.ID, "Пожалуйста, введите возраст целым числом (например: 30)")
	}

	h.stateManager.SetTempData(user.TelegramID, state.TempAge, float64(age))
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForActivity)
	return sendText(h.api, message.Chat.ID, "Сколько минут активности у вас в день?")
}

func (h *TextHandler) handleActivity(message *tgbotapi.Message, user *domain.UserProfile) error {
	activity, err := parsePositiveInt(message.Text)
	if err != nil {
		return sendText(h.api, message.Chat.ID, "Пожалуйста, введите минуты активности целым числом (например: 60)")
	}

	h.stateManager.SetTempData(user.TelegramID, state.TempActivity, float64(activity))
	h.stateManager.SetUserState(user.TelegramID, state.WaitingForCity)
	return sendText(h.api, message.Chat.ID, "В каком городе вы находитесь?")
}

// handleCity is the last form step: assemble the input, set the profile (this
// recomputes both goals, the water goal needs a live temperature) and report.
func (h *TextHandler) handleCity(ctx context.Context, message *tgbotapi.Message, user *domain.UserProfile) error {
	input := domain.ProfileInput{
		Name:            h.tempString(user.TelegramID, state.TempName),
		HeightCM:        h.tempFloat(user.TelegramID, state.TempHeight),
		WeightKG:        h.tempFloat(user.TelegramID, state.TempWeight),
		AgeYears:        int(h.tempFloat(user.TelegramID, state.TempAge)),
		ActivityMinutes: int(h.tempFloat(user.TelegramID, state.TempActivity)),
		City:            message.Text,
	}

	profile, err := h.deps.UserService.SetProfile(ctx, user.TelegramID, input)
	if err != nil {
		// The form stays in the city state so the user can retry with
		// another city name; everything else is already collected.
		return sendServiceError(h.api, message.Chat.ID, err)
	}

	h.stateManager.ClearTempData(user.TelegramID)
	h.stateManager.SetUserState(user.TelegramID, state.None)

	if err := sendText(h.api, message.Chat.ID, "Профиль заполнен!"); err != nil {
		return err
	}
	return menus.SendProfileSummary(h.api, message.Chat.ID, profile)
}

func (h *TextHandler) handleWaterAmount(ctx context.Context, message *tgbotapi.Message, user *domain.UserProfile) error {
	amount, err := parseAmount(message.Text)
	if err != nil {
		return sendText(h.api, message.Chat.ID, "Пожалуйста, введите количество воды в мл числом (например: 300)")
	}

	result, err := h.deps.Tracking.LogWater(ctx, user.TelegramID, amount)
	if err != nil {
		return sendServiceError(h.api, message.Chat.ID, err)
	}

	h.stateManager.SetUserState(user.TelegramID, state.None)
	return sendWaterResult(h.api, message.Chat.ID, amount, result)
}

func (h *TextHandler) handleFoodGrams(ctx context.Context, message *tgbotapi.Message, user *domain.UserProfile) error {
	grams, err := parseAmount(message.Text)
	if err != nil {
		return sendText(h.api, message.Chat.ID, "Пожалуйста, введите количество грамм числом (например: 150)")
	}

	calPer100, ok := h.stateManager.GetTempData(user.TelegramID, state.TempCalPer100g)
	if !ok {
		h.stateManager.SetUserState(user.TelegramID, state.None)
		return sendText(h.api, message.Chat.ID, "Продукт не выбран. Начните заново: /log_food")
	}

	result, err := h.deps.Tracking.LogFood(ctx, user.TelegramID, toFloat(calPer100), grams)
	if err != nil {
		return sendServiceError(h.api, message.Chat.ID, err)
	}

	h.stateManager.ClearTempData(user.TelegramID)
	h.stateManager.SetUserState(user.TelegramID, state.None)
	return sendFoodResult(h.api, message.Chat.ID, result)
}

func (h *TextHandler) handleWorkout(ctx context.Context, message *tgbotapi.Message, user *domain.UserProfile) error {
	workoutType, minutes, err := parseWorkoutArgs(message.Text)
	if err != nil {
		return sendText(h.api, message.Chat.ID, "Укажите тип тренировки и минуты, например: бег 30")
	}

	result, err := h.deps.Tracking.LogWorkout(ctx, user.TelegramID, workoutType, minutes)
	if err != nil {
		return sendServiceError(h.api, message.Chat.ID, err)
	}

	h.stateManager.SetUserState(user.TelegramID, state.None)
	return sendWorkoutResult(h.api, message.Chat.ID, workoutType, minutes, result)
}

// handleDefaultText handles text when no specific state is set
func (h *TextHandler) handleDefaultText(chatID int64) error {
	return sendText(h.api, chatID, "Пожалуйста, используйте меню для выбора действия.")
}

func (h *TextHandler) tempString(userID int64, key string) string {
	value, ok := h.stateManager.GetTempData(userID, key)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

func (h *TextHandler) tempFloat(userID int64, key string) float64 {
	value, ok := h.stateManager.GetTempData(userID, key)
	if !ok {
		return 0
	}
	return toFloat(value)
}

// toFloat tolerates the JSON round-trip of the Redis state manager, which
// hands numbers back as float64 regardless of how they were stored.
func toFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
