package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"obesity-triage/internal/artifact"
	"obesity-triage/internal/models"
	"obesity-triage/internal/services"
)

// TriageHandler обрабатывает HTTP запросы триажа
type TriageHandler struct {
	triageService *services.TriageService
}

// NewTriageHandler создает новый обработчик запросов триажа
func NewTriageHandler(triageService *services.TriageService) *TriageHandler {
	return &TriageHandler{triageService: triageService}
}

// Analyze выполняет полный анализ анкеты пациента
// @Summary Анализ риска ожирения
// @Description Кодирует анкету, выполняет классификацию и возвращает категорию веса, уверенность, ИМТ и предупреждения о факторах риска
// @Tags triage
// @Accept json
// @Produce json
// @Param request body models.PatientRecord true "Анкета пациента"
// @Success 200 {object} models.AnalysisResponse "Результат анализа"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 422 {object} models.ErrorResponse "Расхождение схемы признаков"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера"
// @Router /triage/analyze [post]
func (h *TriageHandler) Analyze(c *gin.Context) {
	var rec models.PatientRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		slog.Warn("Invalid analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	response, err := h.triageService.Analyze(&rec)
	if err != nil {
		if errors.Is(err, artifact.ErrSchemaMismatch) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "schema mismatch",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "triage service error",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// Features кодирует анкету без инференса
// @Summary Кодирование признаков анкеты
// @Description Возвращает производные колонки и вектор признаков, выровненный по схеме модели, без выполнения классификации
// @Tags triage
// @Accept json
// @Produce json
// @Param request body models.PatientRecord true "Анкета пациента"
// @Success 200 {object} models.FeaturesResponse "Закодированные признаки"
// @Failure 400 {object} models.ErrorResponse "Неверный запрос"
// @Failure 422 {object} models.ErrorResponse "Расхождение схемы признаков"
// @Router /triage/features [post]
func (h *TriageHandler) Features(c *gin.Context) {
	var rec models.PatientRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": err.Error(),
		})
		return
	}

	response, err := h.triageService.EncodeOnly(&rec)
	if err != nil {
		if errors.Is(err, artifact.ErrSchemaMismatch) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "schema mismatch",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "feature encoding error",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// Schema возвращает схему модели и допустимые значения формы
// @Summary Схема модели
// @Description Возвращает список признаков артефакта, классы модели и допустимые значения категориальных полей формы
// @Tags triage
// @Produce json
// @Success 200 {object} models.SchemaResponse "Схема модели"
// @Router /triage/schema [get]
func (h *TriageHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, h.triageService.Schema())
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса триажа
// @Description Возвращает статус работы сервиса
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис работает"
// @Router /triage/health [get]
func (h *TriageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
