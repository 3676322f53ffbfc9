package insights

import "obesity-triage/internal/models"

// rule одно пороговое правило: категория, предикат и готовый текст
type rule struct {
	category string
	message  string
	check    func(r *models.PatientRecord) bool
}

// rules таблица правил в фиксированном порядке приоритета.
// Правила независимы и проверяются все без короткого замыкания.
var rules = []rule{
	{
		category: models.AlertHydration,
		message:  "💧 Гидратация: потребление воды ниже рекомендуемого. Рекомендуется более 2 л в день.",
		check:    func(r *models.PatientRecord) bool { return r.WaterIntake < 2 },
	},
	{
		category: models.AlertNutrition,
		message:  "🥦 Питание: отмечено низкое потребление овощей.",
		check:    func(r *models.PatientRecord) bool { return r.VegetableFrequency < 2 },
	},
	{
		category: models.AlertActivity,
		message:  "🏃 Физическая активность: активность не зарегистрирована. Риск гиподинамии.",
		check:    func(r *models.PatientRecord) bool { return r.PhysicalActivity == 0 },
	},
	{
		category: models.AlertScreenTime,
		message:  "📱 Экранное время: повышенное использование электронных устройств.",
		check:    func(r *models.PatientRecord) bool { return r.ScreenTime > 1 },
	},
}

// Evaluate проверяет все правила по порядку и возвращает предупреждения.
// Пустой список — нормальный и частый результат.
func Evaluate(r *models.PatientRecord) []models.Alert {
	alerts := make([]models.Alert, 0, len(rules))
	for _, rl := range rules {
		if rl.check(r) {
			alerts = append(alerts, models.Alert{Category: rl.category, Message: rl.message})
		}
	}
	return alerts
}
