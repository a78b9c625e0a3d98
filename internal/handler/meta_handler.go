package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"pcosapi/internal/predictor"
)

// MetaHandler serves the unauthenticated service metadata endpoints.
type MetaHandler struct {
	gateway *predictor.Gateway
	db      *gorm.DB
}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler(gateway *predictor.Gateway, db *gorm.DB) *MetaHandler {
	return &MetaHandler{gateway: gateway, db: db}
}

// Home godoc
// @Summary Service banner with loaded feature list
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *MetaHandler) Home(c echo.Context) error {
	status := "ready"
	if !h.gateway.Loaded() {
		status = "model_not_loaded"
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "PCOS Prediction API is running",
		"features": h.gateway.Features(),
		"status":   status,
	})
}

// Features godoc
// @Summary Ordered feature-name list consumed by the classifier
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /features [get]
func (h *MetaHandler) Features(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"features": h.gateway.Features(),
	})
}

// Health godoc
// @Summary Liveness report covering model artifacts and database
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *MetaHandler) Health(c echo.Context) error {
	dbConnected := false
	if h.db != nil {
		if sqlDB, err := h.db.DB(); err == nil {
			dbConnected = sqlDB.PingContext(c.Request().Context()) == nil
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":             "healthy",
		"model_loaded":       h.gateway.Loaded(),
		"feature_count":      len(h.gateway.Features()),
		"database_connected": dbConnected,
	})
}
