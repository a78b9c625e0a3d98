package handler

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"pcosapi/internal/auth"
	"pcosapi/internal/errors"
	"pcosapi/internal/model"
	"pcosapi/internal/service"
)

// PredictionHandler handles the trained-model prediction endpoints.
type PredictionHandler struct {
	predictionService service.PredictionService
}

// NewPredictionHandler creates a new prediction handler.
func NewPredictionHandler(predictionService service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// PredictResponse is the inference result returned to the caller.
type PredictResponse struct {
	PCOSRisk    int             `json:"pcos_risk"`
	Probability float64         `json:"probability"`
	RiskLevel   model.RiskLevel `json:"risk_level"`
	Input       model.JSONMap   `json:"input"`
}

// Predict godoc
// @Summary Run the trained classifier on a feature map
// @Tags predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.JSONMap true "Feature map matching the loaded feature list"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /predict [post]
func (h *PredictionHandler) Predict(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var input model.JSONMap
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.predictionService.Predict(c.Request().Context(), userID, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PredictResponse{
		PCOSRisk:    result.Label,
		Probability: round3(result.Probability),
		RiskLevel:   result.RiskLevel,
		Input:       input,
	})
}

// History godoc
// @Summary List the caller's predictions, newest first
// @Tags predictions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /predictions/history [get]
func (h *PredictionHandler) History(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	predictions, err := h.predictionService.History(c.Request().Context(), userID)
	if err != nil {
		predictions = []model.Prediction{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"predictions": predictions,
	})
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
