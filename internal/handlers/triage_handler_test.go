package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"obesity-triage/internal/artifact"
	"obesity-triage/internal/models"
	"obesity-triage/internal/services"
)

var testClasses = []string{
	"Insufficient_Weight", "Normal_Weight",
	"Obesity_Type_I", "Obesity_Type_II", "Obesity_Type_III",
	"Overweight_Level_I", "Overweight_Level_II",
}

var testFeatures = []string{
	"Gender", "Age", "Height", "Weight", "family_history",
	"FAVC", "FCVC", "NCP", "CAEC", "SMOKE",
	"CH2O", "SCC", "FAF", "TUE", "CALC",
	"MTRANS_Automobile", "MTRANS_Bike", "MTRANS_Motorbike",
	"MTRANS_Public_Transportation", "MTRANS_Walking",
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	coef := make([][]float64, len(testClasses))
	for i := range coef {
		coef[i] = make([]float64, len(testFeatures))
	}
	intercept := make([]float64, len(testClasses))
	intercept[1] = 5.0 // Normal_Weight

	art := &artifact.ModelArtifact{
		Model:        &artifact.Classifier{Coef: coef, Intercept: intercept},
		LabelEncoder: &artifact.LabelEncoder{Classes: testClasses},
		Features:     testFeatures,
	}
	return SetupRoutes(NewTriageHandler(services.NewTriageService(art)))
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"gender":              "male",
		"age":                 25,
		"height":              1.70,
		"weight":              70.0,
		"vegetable_frequency": 2,
		"meals_per_day":       3,
		"water_intake":        2,
		"physical_activity":   1,
		"screen_time":         1,
		"transport_mode":      "public_transport",
	}
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := testRouter()

	w := doRequest(t, router, http.MethodPost, "/api/v1/triage/analyze", validBody())
	if w.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидалось 200, тело: %s", w.Code, w.Body.String())
	}

	var res models.AnalysisResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("разбор ответа: %v", err)
	}
	if res.AnalysisID == "" {
		t.Error("пустой analysis_id")
	}
	if res.Prediction.Class != "Normal_Weight" {
		t.Errorf("класс = %q, ожидалось Normal_Weight", res.Prediction.Class)
	}
	if res.Prediction.Severity != services.SeveritySuccess {
		t.Errorf("серьезность = %q", res.Prediction.Severity)
	}
	if len(res.Prediction.Probabilities) != 7 {
		t.Errorf("классов в распределении = %d, ожидалось 7", len(res.Prediction.Probabilities))
	}
}

func TestAnalyzeEndpointValidation(t *testing.T) {
	router := testRouter()

	tests := []struct {
		name   string
		mutate func(body map[string]interface{})
	}{
		{"возраст выше границы", func(b map[string]interface{}) { b["age"] = 150 }},
		{"рост ниже границы", func(b map[string]interface{}) { b["height"] = 0.5 }},
		{"неизвестный транспорт", func(b map[string]interface{}) { b["transport_mode"] = "teleport" }},
		{"неизвестный пол", func(b map[string]interface{}) { b["gender"] = "other" }},
		{"нет обязательного поля", func(b map[string]interface{}) { delete(b, "weight") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validBody()
			tt.mutate(body)

			w := doRequest(t, router, http.MethodPost, "/api/v1/triage/analyze", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("статус = %d, ожидалось 400", w.Code)
			}
		})
	}
}

func TestFeaturesEndpoint(t *testing.T) {
	router := testRouter()

	w := doRequest(t, router, http.MethodPost, "/api/v1/triage/features", validBody())
	if w.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидалось 200, тело: %s", w.Code, w.Body.String())
	}

	var res models.FeaturesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("разбор ответа: %v", err)
	}
	if len(res.Vector) != len(testFeatures) {
		t.Errorf("длина вектора = %d, ожидалось %d", len(res.Vector), len(testFeatures))
	}
}

func TestSchemaEndpoint(t *testing.T) {
	router := testRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/triage/schema", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидалось 200", w.Code)
	}

	var res models.SchemaResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("разбор ответа: %v", err)
	}
	if len(res.Classes) != 7 {
		t.Errorf("классов = %d, ожидалось 7", len(res.Classes))
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter()

	w := doRequest(t, router, http.MethodGet, "/api/v1/triage/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидалось 200", w.Code)
	}

	var res map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res["status"] != "healthy" {
		t.Errorf("status = %v, ожидалось healthy", res["status"])
	}
}
