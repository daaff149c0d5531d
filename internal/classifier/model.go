package classifier

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/domain"
)

// Model predicts a label from a feature vector.
type Model interface {
	Predict(v FeatureVector) domain.Label
	Classes() []domain.Label
	Dimension() int
}

// modelArtifact is the JSON export of a fitted classifier.
//
// "linear" covers logistic regression and linear SVMs (coef/intercept).
// "multinomial_nb" carries class_log_prior/feature_log_prob, which decide the same way.
type modelArtifact struct {
	Kind           string      `json:"kind"`
	Classes        []int       `json:"classes"`
	Coef           [][]float64 `json:"coef"`
	Intercept      []float64   `json:"intercept"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// LinearModel scores each class as intercept + coef·x and picks the highest score.
// With a single coef row it is a binary model: a positive score selects the second class.
type LinearModel struct {
	classes   []domain.Label
	coef      [][]float64
	intercept []float64
	dim       int
}

// ParseModel decodes and validates a model artifact.
func ParseModel(r io.Reader) (*LinearModel, error) {
	var a modelArtifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}

	var coef [][]float64
	var intercept []float64
	switch a.Kind {
	case "linear", "":
		coef, intercept = a.Coef, a.Intercept
	case "multinomial_nb":
		coef, intercept = a.FeatureLogProb, a.ClassLogPrior
	default:
		return nil, fmt.Errorf("unsupported model kind %q", a.Kind)
	}

	return NewLinearModel(a.Classes, coef, intercept)
}

// NewLinearModel builds a LinearModel, checking that the shapes agree.
func NewLinearModel(classes []int, coef [][]float64, intercept []float64) (*LinearModel, error) {
	if len(classes) < 2 {
		return nil, fmt.Errorf("model needs at least two classes, got %d", len(classes))
	}
	if len(coef) == 0 {
		return nil, fmt.Errorf("model has no coefficients")
	}

	binary := len(coef) == 1
	if binary && len(classes) != 2 {
		return nil, fmt.Errorf("single coefficient row needs exactly two classes, got %d", len(classes))
	}
	if !binary && len(coef) != len(classes) {
		return nil, fmt.Errorf("model has %d coefficient rows for %d classes", len(coef), len(classes))
	}
	if len(intercept) != len(coef) {
		return nil, fmt.Errorf("model has %d intercepts for %d coefficient rows", len(intercept), len(coef))
	}

	dim := len(coef[0])
	for i, row := range coef {
		if len(row) != dim {
			return nil, fmt.Errorf("coefficient row %d has %d features, expected %d", i, len(row), dim)
		}
	}

	labels := make([]domain.Label, len(classes))
	for i, c := range classes {
		labels[i] = domain.Label(c)
	}

	return &LinearModel{
		classes:   labels,
		coef:      coef,
		intercept: intercept,
		dim:       dim,
	}, nil
}

// Predict returns the label with the highest decision score. Ties go to the earlier class.
func (m *LinearModel) Predict(v FeatureVector) domain.Label {
	if len(m.coef) == 1 {
		if m.score(0, v) > 0 {
			return m.classes[1]
		}
		return m.classes[0]
	}

	best := 0
	bestScore := m.score(0, v)
	for k := 1; k < len(m.coef); k++ {
		if s := m.score(k, v); s > bestScore {
			best, bestScore = k, s
		}
	}
	return m.classes[best]
}

func (m *LinearModel) score(k int, v FeatureVector) float64 {
	s := m.intercept[k]
	row := m.coef[k]
	for i, idx := range v.Indices {
		s += row[idx] * v.Values[i]
	}
	return s
}

// Classes returns the labels the model can emit, in artifact order.
func (m *LinearModel) Classes() []domain.Label {
	out := make([]domain.Label, len(m.classes))
	copy(out, m.classes)
	return out
}

// Dimension returns the number of features the model expects.
func (m *LinearModel) Dimension() int {
	return m.dim
}
