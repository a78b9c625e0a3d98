package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pcosapi/internal/auth"
	"pcosapi/internal/model"
	"pcosapi/internal/service"
)

// LifestyleHandler handles the rule-based screening and symptom tracker
// endpoints.
type LifestyleHandler struct {
	lifestyleService service.LifestyleService
}

// NewLifestyleHandler creates a new lifestyle handler.
func NewLifestyleHandler(lifestyleService service.LifestyleService) *LifestyleHandler {
	return &LifestyleHandler{lifestyleService: lifestyleService}
}

// SymptomLogResponse reports the outcome of a symptom log save.
type SymptomLogResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Assess godoc
// @Summary Rule-based lifestyle screening
// @Tags lifestyle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.JSONMap true "Lifestyle fields"
// @Success 200 {object} predictor.Assessment
// @Failure 401 {object} errors.ErrorResponse
// @Router /lifestyle/assess [post]
func (h *LifestyleHandler) Assess(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var input model.JSONMap
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if input == nil {
		input = model.JSONMap{}
	}

	assessment := h.lifestyleService.Assess(c.Request().Context(), userID, input)
	return c.JSON(http.StatusOK, assessment)
}

// SaveSymptomLog godoc
// @Summary Save a symptom tracker entry
// @Tags lifestyle
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.JSONMap true "Arbitrary log payload"
// @Success 200 {object} SymptomLogResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} SymptomLogResponse
// @Router /lifestyle/save-symptom-log [post]
func (h *LifestyleHandler) SaveSymptomLog(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var data model.JSONMap
	if err := c.Bind(&data); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if data == nil {
		data = model.JSONMap{}
	}

	if err := h.lifestyleService.SaveSymptomLog(c.Request().Context(), userID, data); err != nil {
		return c.JSON(http.StatusInternalServerError, SymptomLogResponse{
			OK:      false,
			Message: "Failed to save symptom log",
		})
	}

	return c.JSON(http.StatusOK, SymptomLogResponse{
		OK:      true,
		Message: "Symptom log saved",
	})
}

// History godoc
// @Summary List the caller's screening history, newest first
// @Tags lifestyle
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /lifestyle/prediction-history [get]
func (h *LifestyleHandler) History(c echo.Context) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	items, err := h.lifestyleService.History(c.Request().Context(), userID)
	if err != nil {
		items = []service.LifestyleHistoryItem{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"predictions": items,
	})
}
