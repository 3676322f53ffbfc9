package insights

import (
	"reflect"
	"testing"

	"obesity-triage/internal/models"
)

func baseRecord() *models.PatientRecord {
	return &models.PatientRecord{
		Gender:             models.GenderMale,
		Age:                25,
		Height:             1.70,
		Weight:             70.0,
		VegetableFrequency: 2,
		MealsPerDay:        3,
		WaterIntake:        2,
		PhysicalActivity:   1,
		ScreenTime:         1,
		TransportMode:      models.TransportPublic,
	}
}

func categories(alerts []models.Alert) []string {
	cats := make([]string, len(alerts))
	for i, a := range alerts {
		cats[i] = a.Category
	}
	return cats
}

func TestEvaluateAllRulesFire(t *testing.T) {
	rec := baseRecord()
	rec.WaterIntake = 1
	rec.VegetableFrequency = 1
	rec.PhysicalActivity = 0
	rec.ScreenTime = 2

	alerts := Evaluate(rec)

	want := []string{
		models.AlertHydration,
		models.AlertNutrition,
		models.AlertActivity,
		models.AlertScreenTime,
	}
	if got := categories(alerts); !reflect.DeepEqual(got, want) {
		t.Errorf("категории = %v, ожидалось %v", got, want)
	}
	for _, a := range alerts {
		if a.Message == "" {
			t.Errorf("пустой текст предупреждения в категории %s", a.Category)
		}
	}
}

func TestEvaluateNoRulesFire(t *testing.T) {
	rec := baseRecord()
	rec.WaterIntake = 3
	rec.VegetableFrequency = 3
	rec.PhysicalActivity = 2
	rec.ScreenTime = 0

	if alerts := Evaluate(rec); len(alerts) != 0 {
		t.Errorf("ожидался пустой список, получено %v", alerts)
	}
}

func TestEvaluateSingleRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *models.PatientRecord)
		category string
	}{
		{"вода ниже порога", func(r *models.PatientRecord) { r.WaterIntake = 1 }, models.AlertHydration},
		{"мало овощей", func(r *models.PatientRecord) { r.VegetableFrequency = 1 }, models.AlertNutrition},
		{"нет активности", func(r *models.PatientRecord) { r.PhysicalActivity = 0 }, models.AlertActivity},
		{"много экранного времени", func(r *models.PatientRecord) { r.ScreenTime = 2 }, models.AlertScreenTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			tt.mutate(rec)

			alerts := Evaluate(rec)
			if len(alerts) != 1 {
				t.Fatalf("ожидалось одно предупреждение, получено %d", len(alerts))
			}
			if alerts[0].Category != tt.category {
				t.Errorf("категория = %s, ожидалось %s", alerts[0].Category, tt.category)
			}
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	rec := baseRecord()
	rec.WaterIntake = 1
	rec.ScreenTime = 2

	first := Evaluate(rec)
	for i := 0; i < 10; i++ {
		if next := Evaluate(rec); !reflect.DeepEqual(next, first) {
			t.Fatalf("повторный вызов вернул другой результат: %v != %v", next, first)
		}
	}
}
