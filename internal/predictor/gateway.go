package predictor

import (
	"pcosapi/internal/errors"
	"pcosapi/internal/model"
)

// Result is the outcome of one classifier invocation.
type Result struct {
	Label       int
	Probability float64
	RiskLevel   model.RiskLevel
}

// Gateway wraps the pre-fitted classifier and feature transform. Artifacts
// are read-only, so concurrent Predict calls need no coordination.
type Gateway struct {
	artifacts *Artifacts
}

// New creates a gateway over loaded artifacts. A nil artifacts value builds
// a gateway that reports not-loaded on every call.
func New(artifacts *Artifacts) *Gateway {
	return &Gateway{artifacts: artifacts}
}

// Loaded reports whether the model artifacts were loaded at startup.
func (g *Gateway) Loaded() bool {
	return g.artifacts != nil
}

// Features returns the ordered feature-name list, empty when not loaded.
func (g *Gateway) Features() []string {
	if g.artifacts == nil {
		return []string{}
	}
	return g.artifacts.Features
}

// Predict assembles the named features into a vector in artifact order,
// applies the scaler and classifier, and discretizes the positive-class
// probability into a risk tier. The first missing feature fails the call.
func (g *Gateway) Predict(input map[string]interface{}) (*Result, error) {
	if g.artifacts == nil {
		return nil, errors.ErrModelNotLoaded
	}

	values := make([]float64, 0, len(g.artifacts.Features))
	for _, name := range g.artifacts.Features {
		raw, ok := input[name]
		if !ok {
			return nil, &errors.MissingFeatureError{Feature: name}
		}
		v, ok := toFloat(raw)
		if !ok {
			return nil, &errors.InvalidFeatureError{Feature: name}
		}
		values = append(values, v)
	}

	scaled := g.artifacts.Scaler.Transform(values)
	prob := g.artifacts.Model.PredictProba(scaled)

	label := 0
	if prob >= 0.5 {
		label = 1
	}

	return &Result{
		Label:       label,
		Probability: prob,
		RiskLevel:   RiskLevelFor(prob),
	}, nil
}

// RiskLevelFor maps a positive-class probability onto the fixed tier
// thresholds: <0.30 Low, [0.30, 0.70) Moderate, >=0.70 High.
func RiskLevelFor(p float64) model.RiskLevel {
	switch {
	case p < 0.3:
		return model.RiskLow
	case p < 0.7:
		return model.RiskModerate
	default:
		return model.RiskHigh
	}
}
