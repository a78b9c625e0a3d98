package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pcosapi/internal/model"
)

func TestAssessLifestyle(t *testing.T) {
	tests := []struct {
		name        string
		input       map[string]interface{}
		probability float64
		riskLevel   model.RiskLevel
	}{
		{
			name:        "empty input scores sedentary baseline",
			input:       map[string]interface{}{},
			probability: 0.13, // base 0.05 + exercise < 2
			riskLevel:   model.RiskLow,
		},
		{
			name:        "active normal weight",
			input:       map[string]interface{}{"BMI": 22.0, "ExerciseFrequency": 4.0, "Hirsutism": 0},
			probability: 0.05,
			riskLevel:   model.RiskLow,
		},
		{
			name:        "overweight adds moderate weight factor",
			input:       map[string]interface{}{"BMI": 26.0, "ExerciseFrequency": 3.0, "Hirsutism": 0},
			probability: 0.17,
			riskLevel:   model.RiskLow,
		},
		{
			name:        "all factors stack",
			input:       map[string]interface{}{"BMI": 31.0, "ExerciseFrequency": 1.0, "Hirsutism": 2},
			probability: 0.55, // 0.05 + 0.28 + 0.14 + 0.08
			riskLevel:   model.RiskModerate,
		},
		{
			name:        "numeric strings are accepted",
			input:       map[string]interface{}{"BMI": "31", "ExerciseFrequency": "1", "Hirsutism": "2"},
			probability: 0.55,
			riskLevel:   model.RiskModerate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := AssessLifestyle(tt.input)

			assert.InDelta(t, tt.probability, assessment.Probability, 1e-9)
			assert.Equal(t, tt.riskLevel, assessment.RiskLevel)
			assert.NotEmpty(t, assessment.Recommendations)
			assert.NotEmpty(t, assessment.PredictionText)
			assert.Equal(t, tt.input, assessment.Input)
		})
	}
}

func TestAssessLifestyle_ProbabilityRoundedToThreeDecimals(t *testing.T) {
	// 0.05 + 0.12 accumulates float noise; the reported score is exact.
	assessment := AssessLifestyle(map[string]interface{}{"BMI": 26.0, "ExerciseFrequency": 3.0, "Hirsutism": 0})

	assert.Equal(t, 0.17, assessment.Probability)
}

func TestAssessLifestyle_ProbabilityClamped(t *testing.T) {
	assessment := AssessLifestyle(map[string]interface{}{"BMI": 45.0, "ExerciseFrequency": 0.0, "Hirsutism": 5})

	assert.GreaterOrEqual(t, assessment.Probability, 0.0)
	assert.LessOrEqual(t, assessment.Probability, 0.99)
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected float64
		ok       bool
	}{
		{12.5, 12.5, true},
		{12, 12.0, true},
		{"12.5", 12.5, true},
		{"abc", 0, false},
		{nil, 0, false},
		{[]string{"x"}, 0, false},
	}

	for _, tt := range tests {
		got, ok := toFloat(tt.value)
		assert.Equal(t, tt.ok, ok, "value %v", tt.value)
		if tt.ok {
			assert.Equal(t, tt.expected, got)
		}
	}
}
