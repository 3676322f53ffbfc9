package artifact

import "fmt"

// LabelEncoder отображение между именами классов и внутренними
// индексами модели. Порядок Classes фиксирован при обучении.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// InverseTransform возвращает имя класса по внутреннему индексу
func (le *LabelEncoder) InverseTransform(idx int) (string, error) {
	if idx < 0 || idx >= len(le.Classes) {
		return "", fmt.Errorf("индекс класса %d вне диапазона [0, %d)", idx, len(le.Classes))
	}
	return le.Classes[idx], nil
}
