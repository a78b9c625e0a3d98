package predictor

import (
	"encoding/json"
	"math"
	"strconv"

	"pcosapi/internal/model"
)

// Recommendation is a single actionable suggestion in a lifestyle screening
// result.
type Recommendation struct {
	Category    string   `json:"category"`
	Priority    int      `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// Assessment is the outcome of the rule-based lifestyle screening path.
type Assessment struct {
	RiskLevel       model.RiskLevel        `json:"risk_level"`
	Probability     float64                `json:"probability"`
	Confidence      float64                `json:"confidence"`
	PredictionText  string                 `json:"prediction_text"`
	Recommendations []Recommendation       `json:"recommendations"`
	Input           map[string]interface{} `json:"input"`
}

// AssessLifestyle scores self-reported lifestyle fields with an additive
// rule instead of the trained classifier. The coefficients are a screening
// stub, not clinical logic.
func AssessLifestyle(input map[string]interface{}) *Assessment {
	bmi, _ := toFloat(input["BMI"])
	exercise, _ := toFloat(input["ExerciseFrequency"])
	hirsutism, _ := toFloat(input["Hirsutism"])

	prob := 0.05
	switch {
	case bmi >= 30:
		prob += 0.28
	case bmi >= 25:
		prob += 0.12
	}
	if hirsutism >= 2 {
		prob += 0.14
	}
	if exercise < 2 {
		prob += 0.08
	}

	if prob < 0 {
		prob = 0
	}
	if prob > 0.99 {
		prob = 0.99
	}
	// Reported to three decimal places, in the response and the persisted copy.
	prob = math.Round(prob*1000) / 1000

	return &Assessment{
		RiskLevel:      RiskLevelFor(prob),
		Probability:    prob,
		Confidence:     0.78,
		PredictionText: "This is a lifestyle screening estimate — not a clinical diagnosis.",
		Recommendations: []Recommendation{
			{
				Category:    "Lifestyle",
				Priority:    1,
				Title:       "Increase physical activity",
				Description: "Aim for 30 minutes of moderate exercise at least 4 days a week.",
				Actions:     []string{"Walk 30 mins", "Home cardio sessions", "Begin a light strength program"},
			},
		},
		Input: input,
	}
}

// toFloat coerces loosely typed JSON values to float64. Clients send both
// numbers and numeric strings.
func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
