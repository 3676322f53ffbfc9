package services

// CalcBMI вычисляет индекс массы тела: вес / рост².
// Входные значения уже ограничены формой, ошибок нет.
func CalcBMI(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// BMICategory возвращает категорию ИМТ по шкале ВОЗ
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Дефицит массы тела"
	case bmi < 25.0:
		return "Норма"
	case bmi < 30.0:
		return "Избыточный вес"
	default:
		return "Ожирение"
	}
}
