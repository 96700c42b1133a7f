package classifier

import (
	"fmt"
	"math"
)

// LinearModel is a fitted multiclass linear classifier: one row of
// coefficients and one intercept per class.
type LinearModel struct {
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

func (m *LinearModel) validate(featureDim int) error {
	if len(m.Coefficients) == 0 {
		return fmt.Errorf("model has no classes")
	}
	if len(m.Intercepts) != len(m.Coefficients) {
		return fmt.Errorf("%d intercepts for %d classes", len(m.Intercepts), len(m.Coefficients))
	}
	for i, row := range m.Coefficients {
		if len(row) != featureDim {
			return fmt.Errorf("class %d has %d coefficients, expected %d", i, len(row), featureDim)
		}
	}
	return nil
}

// PredictProba computes class probabilities for a sparse feature vector via
// softmax over the per-class decision scores. Returns the arg-max class and
// its probability.
func (m *LinearModel) PredictProba(features map[int]float64) (class int, prob float64, err error) {
	if len(m.Coefficients) == 0 {
		return 0, 0, fmt.Errorf("model has no classes")
	}

	scores := make([]float64, len(m.Coefficients))
	for i, row := range m.Coefficients {
		score := m.Intercepts[i]
		for col, w := range features {
			if col >= len(row) {
				return 0, 0, fmt.Errorf("feature column %d outside coefficient row of length %d", col, len(row))
			}
			score += row[col] * w
		}
		scores[i] = score
	}

	// Softmax with max-shift for numeric stability.
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}
	var sum float64
	for i, s := range scores {
		scores[i] = math.Exp(s - maxScore)
		sum += scores[i]
	}

	for i, s := range scores {
		p := s / sum
		if p > prob {
			prob = p
			class = i
		}
	}
	return class, prob, nil
}
