package router

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"placeshare/internal/auth"
	"placeshare/internal/config"
	apperrors "placeshare/internal/errors"
	"placeshare/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userHandler *handler.UserHandler,
	placeHandler *handler.PlaceHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.HTTPErrorHandler = newHTTPErrorHandler()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served straight off disk.
	e.Static("/uploads/images", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.GET("/users", userHandler.ListUsers)
	api.POST("/users/signup", userHandler.Signup)
	api.POST("/users/login", userHandler.Login)
	api.GET("/users/:uid/places", placeHandler.GetPlacesByUser)
	api.GET("/places/:pid", placeHandler.GetPlace)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	secured.POST("/places", placeHandler.CreatePlace)
	secured.PATCH("/places/:pid", placeHandler.UpdatePlace)
	secured.DELETE("/places/:pid", placeHandler.DeletePlace)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// newHTTPErrorHandler renders every error as {message} and removes any
// uploaded file a failed multipart request left behind.
func newHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if path, ok := c.Get(handler.UploadedFileKey).(string); ok && path != "" {
			if rmErr := os.Remove(path); rmErr != nil {
				log.Printf("remove orphaned upload %s: %v", path, rmErr)
			}
		}

		status := http.StatusInternalServerError
		message := "An unknown error has occured!"

		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			switch m := he.Message.(type) {
			case apperrors.ErrorResponse:
				message = m.Message
			case string:
				message = m
			default:
				message = fmt.Sprintf("%v", m)
			}
			if status == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
				message = "Could not find this route."
			}
		}

		if c.Response().Committed {
			return
		}
		if jsonErr := c.JSON(status, apperrors.ErrorResponse{Message: message}); jsonErr != nil {
			log.Printf("write error response: %v", jsonErr)
		}
	}
}
