package predictor

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// LogisticModel is a pre-fitted binary logistic regression classifier.
type LogisticModel struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// PredictProba returns the positive-class probability for a scaled vector.
func (m *LogisticModel) PredictProba(x []float64) float64 {
	z := m.Intercept
	for i, c := range m.Coefficients {
		z += c * x[i]
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

// StandardScaler is a pre-fitted standardization transform.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform standardizes a raw feature vector in place order.
func (s *StandardScaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - s.Mean[i]) / s.Scale[i]
	}
	return out
}

// Artifacts bundles the serialized model, scaler and ordered feature names
// loaded once at startup. The value is immutable afterwards.
type Artifacts struct {
	Model    *LogisticModel
	Scaler   *StandardScaler
	Features []string
}

// LoadArtifacts reads the three serialized artifacts from disk and checks
// their dimensions agree.
func LoadArtifacts(modelPath, scalerPath, featuresPath string) (*Artifacts, error) {
	var m LogisticModel
	if err := readJSON(modelPath, &m); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	var s StandardScaler
	if err := readJSON(scalerPath, &s); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}

	var features []string
	if err := readJSON(featuresPath, &features); err != nil {
		return nil, fmt.Errorf("load feature names: %w", err)
	}

	n := len(features)
	if n == 0 || len(m.Coefficients) != n || len(s.Mean) != n || len(s.Scale) != n {
		return nil, fmt.Errorf("artifact dimensions mismatch: %d features, %d coefficients, %d/%d scaler params",
			n, len(m.Coefficients), len(s.Mean), len(s.Scale))
	}

	return &Artifacts{Model: &m, Scaler: &s, Features: features}, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
