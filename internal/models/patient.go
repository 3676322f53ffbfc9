package models

// Допустимые значения пола в анкете
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Допустимые значения основного вида транспорта
const (
	TransportPublic     = "public_transport"
	TransportWalking    = "walking"
	TransportAutomobile = "automobile"
	TransportMotorbike  = "motorbike"
	TransportBicycle    = "bicycle"
)

// PatientRecord анкета пациента для одного запуска анализа.
// Создается заново на каждый запрос и после этого не изменяется.
// @Description Анкета пациента: физиология и образ жизни. Все границы
// @Description значений совпадают с ограничениями формы ввода.
type PatientRecord struct {
	Gender                  string  `json:"gender" binding:"required,oneof=male female" example:"male"`                                                                         // Пол
	Age                     int     `json:"age" binding:"required,min=14,max=100" example:"25"`                                                                                 // Возраст в годах
	Height                  float64 `json:"height" binding:"required,min=1.00,max=2.50" example:"1.70"`                                                                         // Рост в метрах
	Weight                  float64 `json:"weight" binding:"required,min=30.0,max=200.0" example:"70.0"`                                                                        // Вес в килограммах
	FamilyHistory           bool    `json:"family_history" example:"false"`                                                                                                     // Семейная история ожирения
	FrequentHighCalorieFood bool    `json:"frequent_high_calorie_food" example:"false"`                                                                                         // Частое потребление высококалорийной пищи
	VegetableFrequency      int     `json:"vegetable_frequency" binding:"required,min=1,max=3" example:"2"`                                                                     // Частота потребления овощей (1-3)
	MealsPerDay             int     `json:"meals_per_day" binding:"required,min=1,max=4" example:"3"`                                                                           // Количество основных приемов пищи
	Snacking                int     `json:"between_meal_snacking" binding:"min=0,max=3" example:"1"`                                                                            // Перекусы между приемами пищи: 0=никогда, 1=иногда, 2=часто, 3=всегда
	Smoker                  bool    `json:"smoker" example:"false"`                                                                                                             // Курение
	WaterIntake             int     `json:"water_intake" binding:"required,min=1,max=3" example:"2"`                                                                            // Потребление воды (1-3)
	CalorieMonitoring       bool    `json:"calorie_monitoring" example:"false"`                                                                                                 // Мониторинг потребляемых калорий
	PhysicalActivity        int     `json:"physical_activity" binding:"min=0,max=3" example:"1"`                                                                                // Физическая активность (0-3)
	ScreenTime              int     `json:"screen_time" binding:"min=0,max=2" example:"1"`                                                                                      // Время у экранов (0-2)
	AlcoholConsumption      int     `json:"alcohol_consumption" binding:"min=0,max=3" example:"1"`                                                                              // Алкоголь: 0=никогда, 1=иногда, 2=часто, 3=всегда
	TransportMode           string  `json:"transport_mode" binding:"required,oneof=public_transport walking automobile motorbike bicycle" example:"public_transport"`           // Основной вид транспорта
}

// TransportModes список допустимых видов транспорта в порядке формы
func TransportModes() []string {
	return []string{
		TransportPublic,
		TransportWalking,
		TransportAutomobile,
		TransportMotorbike,
		TransportBicycle,
	}
}

// Genders список допустимых значений пола
func Genders() []string {
	return []string{GenderMale, GenderFemale}
}
