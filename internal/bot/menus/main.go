package menus

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aleksmelnikov/fitness-helper/internal/bot/keyboards"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
	"github.com/aleksmelnikov/fitness-helper/internal/utils"
)

// SendMainMenu sends the main menu to a chat
func SendMainMenu(api *tgbotapi.BotAPI, chatID int64) error {
	text := `🤖 *Фитнес-помощник* — вода, калории и тренировки под контролем

💧 Записывай выпитую воду и следи за дневной нормой
🍎 Считай калории по названию продукта
🏃 Отмечай тренировки — норма воды подстроится

Команды: /set_profile, /log_water, /log_food, /log_workout, /check_progress, /profile

Выберите действие:`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendProfileSummary renders the profile the way the user entered it.
func SendProfileSummary(api *tgbotapi.BotAPI, chatID int64, profile *domain.UserProfile) error {
	if !profile.Complete {
		msg := tgbotapi.NewMessage(chatID, "Профиль ещё не заполнен. Используйте /set_profile.")
		msg.ReplyMarkup = keyboards.ProfileMenu()
		_, err := api.Send(msg)
		return err
	}

	text := fmt.Sprintf(`Имя: %s
Вес: %s кг.
Рост: %s см.
Возраст: %d
Уровень активности: %d мин.
Цель по калориям: %s ккал.
Цель по воде: %s мл.
Город: %s`,
		profile.Name,
		utils.FormatNumber(profile.WeightKG),
		utils.FormatNumber(profile.HeightCM),
		profile.AgeYears,
		profile.ActivityMinutes,
		utils.FormatNumber(profile.CalorieGoalKcal),
		utils.FormatNumber(profile.WaterGoalML),
		profile.City,
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.ProfileMenu()
	_, err := api.Send(msg)
	return err
}

// SendProgress renders a progress snapshot.
func SendProgress(api *tgbotapi.BotAPI, chatID int64, p domain.ProgressSnapshot) error {
	text := fmt.Sprintf(`📊 Прогресс:
Вода:
- Выпито: %s мл из %s мл.
- Осталось: %s мл.

Калории:
- Потреблено: %s ккал из %s ккал.
- Сожжено: %s ккал.
- Баланс: %s ккал.`,
		utils.FormatNumber(p.WaterML),
		utils.FormatNumber(p.EffectiveWaterGoalML),
		utils.FormatNumber(p.WaterResidualML),
		utils.FormatNumber(p.CaloriesKcal),
		utils.FormatNumber(p.CalorieGoalKcal),
		utils.FormatNumber(p.BurnedKcal),
		utils.FormatNumber(p.CalorieBalanceKcal),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.BackToMenu()
	_, err := api.Send(msg)
	return err
}
