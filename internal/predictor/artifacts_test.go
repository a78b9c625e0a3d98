package predictor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadArtifacts(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeArtifact(t, dir, "model.json", `{"coefficients":[0.5,-0.5],"intercept":0.1}`)
	scalerPath := writeArtifact(t, dir, "scaler.json", `{"mean":[1.0,2.0],"scale":[0.5,0.5]}`)
	featuresPath := writeArtifact(t, dir, "features.json", `["A","B"]`)

	artifacts, err := LoadArtifacts(modelPath, scalerPath, featuresPath)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, artifacts.Features)
	assert.Equal(t, []float64{0.5, -0.5}, artifacts.Model.Coefficients)
	assert.Equal(t, []float64{1.0, 2.0}, artifacts.Scaler.Mean)
}

func TestLoadArtifacts_MissingFile(t *testing.T) {
	dir := t.TempDir()
	scalerPath := writeArtifact(t, dir, "scaler.json", `{"mean":[1.0],"scale":[0.5]}`)
	featuresPath := writeArtifact(t, dir, "features.json", `["A"]`)

	_, err := LoadArtifacts(filepath.Join(dir, "absent.json"), scalerPath, featuresPath)
	assert.Error(t, err)
}

func TestLoadArtifacts_DimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeArtifact(t, dir, "model.json", `{"coefficients":[0.5],"intercept":0.1}`)
	scalerPath := writeArtifact(t, dir, "scaler.json", `{"mean":[1.0,2.0],"scale":[0.5,0.5]}`)
	featuresPath := writeArtifact(t, dir, "features.json", `["A","B"]`)

	_, err := LoadArtifacts(modelPath, scalerPath, featuresPath)
	assert.Error(t, err)
}

func TestStandardScaler_Transform(t *testing.T) {
	scaler := &StandardScaler{Mean: []float64{10.0, 20.0}, Scale: []float64{2.0, 4.0}}

	out := scaler.Transform([]float64{14.0, 12.0})
	assert.Equal(t, []float64{2.0, -2.0}, out)
}
