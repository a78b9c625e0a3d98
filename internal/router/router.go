package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pcosapi/internal/auth"
	"pcosapi/internal/config"
	"pcosapi/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	metaHandler *handler.MetaHandler,
	authHandler *handler.AuthHandler,
	predictionHandler *handler.PredictionHandler,
	lifestyleHandler *handler.LifestyleHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/", metaHandler.Home)
	e.GET("/features", metaHandler.Features)
	e.GET("/health", metaHandler.Health)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// Secured routes (require a bearer token)
	secured := e.Group("", auth.RequireAuth(jwtService))

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/predict", predictionHandler.Predict)
	secured.GET("/predictions/history", predictionHandler.History)
	secured.POST("/lifestyle/assess", lifestyleHandler.Assess)
	secured.POST("/lifestyle/save-symptom-log", lifestyleHandler.SaveSymptomLog)
	secured.GET("/lifestyle/prediction-history", lifestyleHandler.History)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
