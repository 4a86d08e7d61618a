package classifier

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxIter is generous for the dataset sizes seen per field (tens to
// low thousands of swipes); full-batch descent converges well before it.
const DefaultMaxIter = 1000

const (
	learningRate = 0.5
	l2Penalty    = 1e-4
	convergeTol  = 1e-6
)

// ErrSingleClass is returned by Fit when the labels contain fewer than two
// distinct values. Callers are expected to treat this as "wait for more
// data", not as a failure.
var ErrSingleClass = errors.New("classifier: training labels contain a single class")

// LogisticRegression is a binary classifier over sparse TF-IDF vectors.
// Fit uses balanced class weights so a skewed like/pass ratio does not pull
// the decision boundary toward the majority label. The fit is fully
// deterministic: zero initialisation, fixed iteration order, no sampling.
type LogisticRegression struct {
	MaxIter int       `json:"max_iter"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// NewLogisticRegression returns an unfitted classifier. maxIter <= 0 falls
// back to DefaultMaxIter.
func NewLogisticRegression(maxIter int) *LogisticRegression {
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	return &LogisticRegression{MaxIter: maxIter}
}

func sigmoid(z float64) float64 {
	// Split on sign to avoid overflow in Exp for large |z|.
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// Fit trains the classifier on vectors X with labels y in {0,1}. numFeatures
// is the dimensionality of the fitted vector space. Both classes must be
// present (ErrSingleClass otherwise).
func (m *LogisticRegression) Fit(X []Vector, y []int, numFeatures int) error {
	if len(X) == 0 {
		return errors.New("classifier: empty training set")
	}
	if len(X) != len(y) {
		return fmt.Errorf("classifier: %d vectors but %d labels", len(X), len(y))
	}

	var positives int
	for _, label := range y {
		if label != 0 && label != 1 {
			return fmt.Errorf("classifier: label %d outside {0,1}", label)
		}
		if label == 1 {
			positives++
		}
	}
	if positives == 0 || positives == len(y) {
		return ErrSingleClass
	}

	// Balanced weighting: each class contributes half the total loss mass
	// regardless of its sample count.
	n := float64(len(y))
	weightPos := n / (2 * float64(positives))
	weightNeg := n / (2 * float64(len(y)-positives))

	m.Weights = make([]float64, numFeatures)
	m.Bias = 0
	grad := make([]float64, numFeatures)

	for iter := 0; iter < m.MaxIter; iter++ {
		for i := range grad {
			grad[i] = 0
		}
		var gradBias float64
		for i, vec := range X {
			cw := weightNeg
			if y[i] == 1 {
				cw = weightPos
			}
			// Weighted residual of the log-loss gradient.
			residual := cw * (m.predictRaw(vec) - float64(y[i]))
			for j, idx := range vec.Indices {
				grad[idx] += residual * vec.Values[j]
			}
			gradBias += residual
		}

		var maxStep float64
		for i := range m.Weights {
			step := learningRate * (grad[i]/n + l2Penalty*m.Weights[i])
			m.Weights[i] -= step
			if s := math.Abs(step); s > maxStep {
				maxStep = s
			}
		}
		biasStep := learningRate * gradBias / n
		m.Bias -= biasStep
		if s := math.Abs(biasStep); s > maxStep {
			maxStep = s
		}

		if maxStep < convergeTol {
			break
		}
	}
	return nil
}

func (m *LogisticRegression) predictRaw(vec Vector) float64 {
	z := m.Bias
	for j, idx := range vec.Indices {
		if idx < len(m.Weights) {
			z += m.Weights[idx] * vec.Values[j]
		}
	}
	return sigmoid(z)
}

// PredictProba returns P(label == 1) for the given vector, always in [0,1].
// The zero vector is valid input and yields sigmoid(bias).
func (m *LogisticRegression) PredictProba(vec Vector) float64 {
	return m.predictRaw(vec)
}
