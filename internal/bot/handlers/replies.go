package handlers

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aleksmelnikov/fitness-helper/internal/apperrors"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
	"github.com/aleksmelnikov/fitness-helper/internal/logger"
	"github.com/aleksmelnikov/fitness-helper/internal/utils"
)

func sendText(api *tgbotapi.BotAPI, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := api.Send(msg)
	return err
}

// sendServiceError maps an error kind to its user-facing message. Adapter
// failures reach here unchanged, the services never swallow them.
func sendServiceError(api *tgbotapi.BotAPI, chatID int64, err error) error {
	logger.Error("service call failed", "error", err)

	var text string
	switch {
	case errors.Is(err, apperrors.ErrProfileIncomplete):
		text = "Сначала заполните профиль — отправьте /set_profile."
	case errors.Is(err, apperrors.ErrCityNotFound):
		text = "Не удалось найти такой город. Проверьте название города в профиле."
	case errors.Is(err, apperrors.ErrTimezoneUnresolvable):
		text = "Не удалось определить часовой пояс вашего города."
	case errors.Is(err, apperrors.ErrWeatherService):
		text = "Сервис погоды временно недоступен. Попробуйте позже."
	case errors.Is(err, apperrors.ErrInvalidInput):
		text = "Пожалуйста, введите корректное положительное число."
	default:
		text = "Произошла ошибка. Пожалуйста, попробуйте ещё раз."
	}
	return sendText(api, chatID, text)
}

// sendWaterResult reports the logged amount and how much is left. A residual
// at or below zero reads as goal met.
func sendWaterResult(api *tgbotapi.BotAPI, chatID int64, amountML float64, result domain.WaterLogResult) error {
	if err := sendText(api, chatID, fmt.Sprintf("✅ Записано: %.1f мл.", amountML)); err != nil {
		return err
	}
	if result.ResidualML > 0 {
		return sendText(api, chatID,
			fmt.Sprintf("До выполнения нормы сегодня осталось: %s мл.", utils.FormatNumber(result.ResidualML)))
	}
	return sendText(api, chatID, "Вы выполнили свою дневную норму!")
}

// sendFoodResult reports the logged calories and how much is left.
func sendFoodResult(api *tgbotapi.BotAPI, chatID int64, result domain.FoodLogResult) error {
	if err := sendText(api, chatID, fmt.Sprintf("✅ Записано: %.1f ккал", result.ConsumedKcal)); err != nil {
		return err
	}
	if result.ResidualKcal > 0 {
		return sendText(api, chatID,
			fmt.Sprintf("До выполнения нормы сегодня осталось: %s ккал.", utils.FormatNumber(result.ResidualKcal)))
	}
	return sendText(api, chatID, "Вы выполнили свою дневную норму!")
}

// sendWorkoutResult reports the burn and the extra water the workout earns.
func sendWorkoutResult(api *tgbotapi.BotAPI, chatID int64, workoutType string, minutes int, result domain.WorkoutLogResult) error {
	text := fmt.Sprintf("%s %d минут — %s ккал.\n💧 Дополнительно: выпейте %s мл воды.",
		utils.CapitalizeFirst(workoutType),
		minutes,
		utils.FormatNumber(result.BurnedKcal),
		utils.FormatNumber(result.ExtraWaterML))
	return sendText(api, chatID, text)
}
