package artifact

import (
	"fmt"

	"obesity-triage/pkg/utils"
)

// Classifier мультиномиальная логистическая модель, восстановленная
// из обученных параметров: матрица весов класс × признак и смещения
type Classifier struct {
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// PredictProba возвращает распределение вероятностей по классам.
// Сумма распределения всегда равна 1.
func (c *Classifier) PredictProba(x []float64) ([]float64, error) {
	if len(c.Coef) == 0 {
		return nil, fmt.Errorf("%w: модель без параметров", ErrSchemaMismatch)
	}
	if len(x) != len(c.Coef[0]) {
		return nil, fmt.Errorf("%w: длина вектора %d, модель ожидает %d",
			ErrSchemaMismatch, len(x), len(c.Coef[0]))
	}

	logits := make([]float64, len(c.Coef))
	for i, row := range c.Coef {
		s := c.Intercept[i]
		for j, w := range row {
			s += w * x[j]
		}
		logits[i] = s
	}
	return utils.Softmax(logits), nil
}

// Predict возвращает индекс предсказанного класса.
// Решающее правило — ArgMax по распределению вероятностей,
// то же самое, что используется для вычисления уверенности.
func (c *Classifier) Predict(x []float64) (int, error) {
	proba, err := c.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return utils.ArgMax(proba), nil
}
