package artifact

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
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

func testArtifact() *ModelArtifact {
	coef := make([][]float64, len(testClasses))
	for i := range coef {
		coef[i] = make([]float64, len(testFeatures))
	}
	return &ModelArtifact{
		Model: &Classifier{
			Coef:      coef,
			Intercept: make([]float64, len(testClasses)),
		},
		LabelEncoder: &LabelEncoder{Classes: testClasses},
		Features:     testFeatures,
	}
}

func writeArtifact(t *testing.T, art *ModelArtifact) string {
	t.Helper()

	data, err := json.Marshal(art)
	if err != nil {
		t.Fatalf("сериализация артефакта: %v", err)
	}

	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("запись артефакта: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeArtifact(t, testArtifact())

	art, err := Load(path)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(art.Features) != len(testFeatures) {
		t.Errorf("признаков = %d, ожидалось %d", len(art.Features), len(testFeatures))
	}
	if len(art.LabelEncoder.Classes) != 7 {
		t.Errorf("классов = %d, ожидалось 7", len(art.LabelEncoder.Classes))
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	art, err := Load(path)
	if !errors.Is(err, ErrArtifactLoad) {
		t.Errorf("ожидалась ErrArtifactLoad, получено %v", err)
	}
	if art != nil {
		t.Errorf("при ошибке бандл должен быть nil, получено %v", art)
	}
}

func TestLoadCorruptPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("{не json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrArtifactLoad) {
		t.Errorf("ожидалась ErrArtifactLoad, получено %v", err)
	}
}

func TestLoadShapeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *ModelArtifact)
	}{
		{"нет model", func(a *ModelArtifact) { a.Model = nil }},
		{"нет label_encoder", func(a *ModelArtifact) { a.LabelEncoder = nil }},
		{"пустые признаки", func(a *ModelArtifact) { a.Features = nil }},
		{"пустые классы", func(a *ModelArtifact) { a.LabelEncoder.Classes = nil }},
		{"лишняя строка coef", func(a *ModelArtifact) {
			a.Model.Coef = append(a.Model.Coef, make([]float64, len(a.Features)))
		}},
		{"короткая строка coef", func(a *ModelArtifact) { a.Model.Coef[3] = a.Model.Coef[3][:5] }},
		{"короткий intercept", func(a *ModelArtifact) { a.Model.Intercept = a.Model.Intercept[:2] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art := testArtifact()
			tt.mutate(art)

			if _, err := Load(writeArtifact(t, art)); !errors.Is(err, ErrArtifactLoad) {
				t.Errorf("ожидалась ErrArtifactLoad, получено %v", err)
			}
		})
	}
}
