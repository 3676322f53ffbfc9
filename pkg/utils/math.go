package utils

import "math"

// SafeFloat заменяет NaN и Inf на 0 перед сериализацией
func SafeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0.0
	}
	return v
}

// Sum вычисляет сумму элементов массива
func Sum(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum
}

// ArgMax возвращает индекс первого максимального элемента.
// При равных значениях побеждает меньший индекс — это единое
// решающее правило и для класса, и для уверенности.
func ArgMax(data []float64) int {
	if len(data) == 0 {
		return -1
	}

	maxIdx := 0
	for i, v := range data[1:] {
		if v > data[maxIdx] {
			maxIdx = i + 1
		}
	}
	return maxIdx
}

// Softmax преобразует логиты в распределение вероятностей
func Softmax(logits []float64) []float64 {
	if len(logits) == 0 {
		return []float64{}
	}

	// сдвиг на максимум для численной устойчивости
	maxLogit := logits[ArgMax(logits)]

	exps := make([]float64, len(logits))
	sum := 0.0
	for i, l := range logits {
		exps[i] = math.Exp(l - maxLogit)
		sum += exps[i]
	}

	for i := range exps {
		exps[i] /= sum
	}
	return exps
}
