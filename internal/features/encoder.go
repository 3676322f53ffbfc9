package features

import (
	"fmt"

	"obesity-triage/internal/artifact"
	"obesity-triage/internal/models"
)

// transportColumns отображение значений формы на one-hot колонки обучения
var transportColumns = map[string]string{
	models.TransportPublic:     "MTRANS_Public_Transportation",
	models.TransportWalking:    "MTRANS_Walking",
	models.TransportAutomobile: "MTRANS_Automobile",
	models.TransportMotorbike:  "MTRANS_Motorbike",
	models.TransportBicycle:    "MTRANS_Bike",
}

// transportColumnSet множество известных one-hot колонок транспорта
var transportColumnSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(transportColumns))
	for _, col := range transportColumns {
		set[col] = struct{}{}
	}
	return set
}()

// Encoder выравнивает данные формы по схеме признаков модели.
// Схема берется из загруженного артефакта и не меняется.
type Encoder struct {
	features   []string
	featureSet map[string]struct{}
}

// NewEncoder создает энкодер для схемы загруженного артефакта
func NewEncoder(art *artifact.ModelArtifact) *Encoder {
	set := make(map[string]struct{}, len(art.Features))
	for _, f := range art.Features {
		set[f] = struct{}{}
	}
	return &Encoder{features: art.Features, featureSet: set}
}

// Features возвращает порядок колонок схемы модели
func (e *Encoder) Features() []string {
	return e.features
}

// Columns строит производные колонки записи до выравнивания:
// числовые коды категориальных полей плюс активный one-hot
// индикатор транспорта. Неактивные индикаторы не включаются.
func (e *Encoder) Columns(rec *models.PatientRecord) (map[string]float64, error) {
	transportCol, ok := transportColumns[rec.TransportMode]
	if !ok {
		return nil, fmt.Errorf("%w: неизвестный вид транспорта %q",
			artifact.ErrSchemaMismatch, rec.TransportMode)
	}

	cols := map[string]float64{
		"Gender":         boolToCode(rec.Gender == models.GenderMale),
		"Age":            float64(rec.Age),
		"Height":         rec.Height,
		"Weight":         rec.Weight,
		"family_history": boolToCode(rec.FamilyHistory),
		"FAVC":           boolToCode(rec.FrequentHighCalorieFood),
		"FCVC":           float64(rec.VegetableFrequency),
		"NCP":            float64(rec.MealsPerDay),
		"CAEC":           float64(rec.Snacking),
		"SMOKE":          boolToCode(rec.Smoker),
		"CH2O":           float64(rec.WaterIntake),
		"SCC":            boolToCode(rec.CalorieMonitoring),
		"FAF":            float64(rec.PhysicalActivity),
		"TUE":            float64(rec.ScreenTime),
		"CALC":           float64(rec.AlcoholConsumption),
	}
	cols[transportCol] = 1

	return cols, nil
}

// Encode строит вектор признаков в точном порядке схемы модели.
// Производная колонка без места в схеме — ошибка кодирования, а не
// повод молча заполнить ноль; нулем заполняются только неактивные
// уровни one-hot транспорта.
func (e *Encoder) Encode(rec *models.PatientRecord) (models.FeatureVector, error) {
	cols, err := e.Columns(rec)
	if err != nil {
		return nil, err
	}

	for name := range cols {
		if _, ok := e.featureSet[name]; !ok {
			return nil, fmt.Errorf("%w: колонка %q отсутствует в схеме модели",
				artifact.ErrSchemaMismatch, name)
		}
	}

	vec := make(models.FeatureVector, len(e.features))
	for i, name := range e.features {
		v, ok := cols[name]
		if !ok {
			if _, isTransport := transportColumnSet[name]; !isTransport {
				return nil, fmt.Errorf("%w: признак %q не выводится из данных формы",
					artifact.ErrSchemaMismatch, name)
			}
			v = 0
		}
		vec[i] = v
	}
	return vec, nil
}

// boolToCode кодирует бинарное поле как 1/0
func boolToCode(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
