package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "placeshare/internal/errors"
	"placeshare/internal/service"
	"placeshare/internal/storage"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
	files       storage.FileStore
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, files storage.FileStore) *UserHandler {
	return &UserHandler{userService: userService, files: files}
}

// SignupRequest represents the multipart signup form.
type SignupRequest struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError,
			apperrors.ErrorResponse{Message: "Fetching users failed, please try again later"})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// Signup godoc
// @Summary Sign up a new user
// @Tags users
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param image formData file true "Profile image"
// @Success 201 {object} AuthResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidInput)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if err := c.Validate(&req); err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidInput)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	file, err := c.FormFile("image")
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidInput)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	imagePath, err := h.files.Save(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError,
			apperrors.ErrorResponse{Message: "Signing up failed, please try again."})
	}
	c.Set(UploadedFileKey, imagePath)

	user, token, err := h.userService.Signup(c.Request().Context(), req.Name, req.Email, req.Password, imagePath)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
		Token:  token,
	})
}

// Login godoc
// @Summary Log in an existing user
// @Description Returns 201 on success for compatibility with existing clients.
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 201 {object} AuthResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidInput)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if err := c.Validate(&req); err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidInput)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	user, token, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
		Token:  token,
	})
}
