package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrArtifactLoad ошибка загрузки артефакта модели.
// При этой ошибке сервис не должен продолжать работу:
// частично загруженный бандл никогда не возвращается.
var ErrArtifactLoad = errors.New("ошибка загрузки артефакта модели")

// ErrSchemaMismatch расхождение между производными колонками формы
// и схемой признаков, на которой обучалась модель
var ErrSchemaMismatch = errors.New("расхождение схемы признаков")

// DefaultFileName имя файла артефакта рядом с исполняемым файлом
const DefaultFileName = "obesity_model.json"

// ModelArtifact бандл обученной модели: классификатор, кодировщик меток
// и список признаков обучения. Загружается один раз при старте процесса
// и дальше только читается, поэтому блокировки не нужны.
type ModelArtifact struct {
	Model        *Classifier   `json:"model"`
	LabelEncoder *LabelEncoder `json:"label_encoder"`
	Features     []string      `json:"features"`
}

// DefaultPath возвращает путь к артефакту рядом с исполняемым файлом
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: не удалось определить путь исполняемого файла: %v", ErrArtifactLoad, err)
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName), nil
}

// Load читает и валидирует бандл модели из файла
func Load(path string) (*ModelArtifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: чтение %s: %v", ErrArtifactLoad, path, err)
	}

	var art ModelArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("%w: разбор %s: %v", ErrArtifactLoad, path, err)
	}

	if err := art.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactLoad, err)
	}
	return &art, nil
}

// validate проверяет согласованность компонентов бандла между собой
func (a *ModelArtifact) validate() error {
	if a.Model == nil {
		return errors.New("в бандле отсутствует model")
	}
	if a.LabelEncoder == nil {
		return errors.New("в бандле отсутствует label_encoder")
	}
	if len(a.Features) == 0 {
		return errors.New("пустой список признаков")
	}
	if len(a.LabelEncoder.Classes) == 0 {
		return errors.New("пустой список классов")
	}
	if len(a.Model.Coef) != len(a.LabelEncoder.Classes) {
		return fmt.Errorf("число строк coef (%d) не совпадает с числом классов (%d)",
			len(a.Model.Coef), len(a.LabelEncoder.Classes))
	}
	if len(a.Model.Intercept) != len(a.LabelEncoder.Classes) {
		return fmt.Errorf("длина intercept (%d) не совпадает с числом классов (%d)",
			len(a.Model.Intercept), len(a.LabelEncoder.Classes))
	}
	for i, row := range a.Model.Coef {
		if len(row) != len(a.Features) {
			return fmt.Errorf("строка coef %d имеет длину %d, ожидалось %d",
				i, len(row), len(a.Features))
		}
	}
	return nil
}
