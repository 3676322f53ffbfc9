package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"obesity-triage/internal/artifact"
	"obesity-triage/internal/features"
	"obesity-triage/internal/insights"
	"obesity-triage/internal/models"
	"obesity-triage/pkg/utils"
)

// labelTranslations отображаемые названия классов модели
var labelTranslations = map[string]string{
	"Insufficient_Weight": "Дефицит массы тела",
	"Normal_Weight":       "Нормальный вес",
	"Overweight_Level_I":  "Избыточный вес I степени",
	"Overweight_Level_II": "Избыточный вес II степени",
	"Obesity_Type_I":      "Ожирение I степени",
	"Obesity_Type_II":     "Ожирение II степени",
	"Obesity_Type_III":    "Ожирение III степени (морбидное)",
}

// Уровни серьезности результата для цветовой индикации
const (
	SeverityDanger  = "danger"
	SeverityWarning = "warning"
	SeveritySuccess = "success"
)

// TriageService выполняет полный цикл анализа одной анкеты:
// кодирование признаков, инференс, ИМТ и предупреждения.
// Артефакт модели внедряется при создании и дальше только читается.
type TriageService struct {
	artifact *artifact.ModelArtifact
	encoder  *features.Encoder
}

// NewTriageService создает сервис триажа для загруженного артефакта
func NewTriageService(art *artifact.ModelArtifact) *TriageService {
	return &TriageService{
		artifact: art,
		encoder:  features.NewEncoder(art),
	}
}

// Analyze выполняет полный pipeline анализа анкеты
func (s *TriageService) Analyze(rec *models.PatientRecord) (*models.AnalysisResponse, error) {
	vec, err := s.encoder.Encode(rec)
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования признаков: %w", err)
	}

	proba, err := s.artifact.Model.PredictProba(vec)
	if err != nil {
		return nil, fmt.Errorf("ошибка инференса: %w", err)
	}

	// одно и то же решающее правило определяет и класс, и уверенность,
	// поэтому они не могут разойтись при равных вероятностях
	idx := utils.ArgMax(proba)
	class, err := s.artifact.LabelEncoder.InverseTransform(idx)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования класса: %w", err)
	}

	bmi := CalcBMI(rec.Weight, rec.Height)

	return &models.AnalysisResponse{
		AnalysisID: uuid.New().String(),
		Prediction: models.PredictionResult{
			Class:         class,
			Label:         TranslateLabel(class),
			Severity:      Severity(class),
			Confidence:    proba[idx],
			Probabilities: s.distribution(proba),
		},
		BMI:         bmi,
		BMICategory: BMICategory(bmi),
		Alerts:      insights.Evaluate(rec),
		Timestamp:   time.Now().UTC(),
	}, nil
}

// EncodeOnly возвращает производные колонки и выровненный вектор без инференса
func (s *TriageService) EncodeOnly(rec *models.PatientRecord) (*models.FeaturesResponse, error) {
	cols, err := s.encoder.Columns(rec)
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования признаков: %w", err)
	}

	vec, err := s.encoder.Encode(rec)
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования признаков: %w", err)
	}

	return &models.FeaturesResponse{
		Columns:  cols,
		Features: s.encoder.Features(),
		Vector:   vec,
	}, nil
}

// Schema описывает схему модели и допустимые значения формы
func (s *TriageService) Schema() *models.SchemaResponse {
	return &models.SchemaResponse{
		Features:       s.encoder.Features(),
		Classes:        s.artifact.LabelEncoder.Classes,
		Genders:        models.Genders(),
		TransportModes: models.TransportModes(),
	}
}

// TranslateLabel переводит имя класса модели в отображаемое название.
// Неизвестный класс возвращается как есть.
func TranslateLabel(class string) string {
	if label, ok := labelTranslations[class]; ok {
		return label
	}
	return class
}

// Severity определяет уровень серьезности по имени класса
func Severity(class string) string {
	switch {
	case strings.Contains(class, "Obesity"):
		return SeverityDanger
	case strings.Contains(class, "Overweight"):
		return SeverityWarning
	default:
		return SeveritySuccess
	}
}

// distribution собирает распределение вероятностей в порядке классов
// кодировщика меток
func (s *TriageService) distribution(proba []float64) []models.ClassProbability {
	dist := make([]models.ClassProbability, len(proba))
	for i, p := range proba {
		class := s.artifact.LabelEncoder.Classes[i]
		dist[i] = models.ClassProbability{
			Class:       class,
			Label:       TranslateLabel(class),
			Probability: utils.SafeFloat(p),
		}
	}
	return dist
}
