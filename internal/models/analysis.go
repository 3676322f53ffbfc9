package models

import "time"

// FeatureVector упорядоченный числовой вектор признаков,
// выровненный по схеме обучения классификатора
type FeatureVector []float64

// Категории предупреждений о факторах риска
const (
	AlertHydration  = "hydration"
	AlertNutrition  = "nutrition"
	AlertActivity   = "activity"
	AlertScreenTime = "screen_time"
)

// Alert предупреждение о факторе риска образа жизни
type Alert struct {
	Category string `json:"category" example:"hydration"` // Категория предупреждения
	Message  string `json:"message"`                      // Текст предупреждения
}

// ClassProbability вероятность одного класса для гистограммы распределения
type ClassProbability struct {
	Class       string  `json:"class" example:"Normal_Weight"`    // Имя класса модели
	Label       string  `json:"label" example:"Нормальный вес"`   // Отображаемое название
	Probability float64 `json:"probability" example:"0.72"`       // Вероятность класса
}

// PredictionResult результат классификации одной анкеты
type PredictionResult struct {
	Class         string             `json:"class" example:"Normal_Weight"`  // Имя предсказанного класса модели
	Label         string             `json:"label" example:"Нормальный вес"` // Отображаемое название класса
	Severity      string             `json:"severity" example:"success" enums:"danger,warning,success"` // Уровень серьезности для цветовой индикации
	Confidence    float64            `json:"confidence" example:"0.72"`      // Максимум распределения вероятностей
	Probabilities []ClassProbability `json:"probabilities"`                  // Распределение в порядке классов кодировщика меток
}

// AnalysisResponse полный результат анализа анкеты
// @Description Результат одного запуска анализа: классификация,
// @Description ИМТ и предупреждения о факторах риска
type AnalysisResponse struct {
	AnalysisID  string           `json:"analysis_id" example:"550e8400-e29b-41d4-a716-446655440000"` // UUID запуска анализа
	Prediction  PredictionResult `json:"prediction"`                                                 // Результат классификации
	BMI         float64          `json:"bmi" example:"24.22"`                                        // Индекс массы тела
	BMICategory string           `json:"bmi_category" example:"Норма"`                               // Категория ИМТ по шкале ВОЗ
	Alerts      []Alert          `json:"alerts"`                                                     // Предупреждения в фиксированном порядке правил
	Timestamp   time.Time        `json:"timestamp" example:"2025-01-15T10:00:00Z"`                   // Время выполнения анализа
}

// FeaturesResponse результат кодирования без инференса
type FeaturesResponse struct {
	Columns  map[string]float64 `json:"columns"`  // Производные колонки до выравнивания по схеме
	Features []string           `json:"features"` // Порядок колонок схемы модели
	Vector   FeatureVector      `json:"vector"`   // Выровненный вектор признаков
}

// SchemaResponse схема модели и допустимые значения формы
type SchemaResponse struct {
	Features       []string `json:"features"`        // Список признаков артефакта в порядке обучения
	Classes        []string `json:"classes"`         // Классы кодировщика меток
	Genders        []string `json:"genders"`         // Допустимые значения пола
	TransportModes []string `json:"transport_modes"` // Допустимые виды транспорта
}
