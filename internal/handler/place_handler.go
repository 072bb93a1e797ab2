package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "placeshare/internal/errors"
	"placeshare/internal/service"
	"placeshare/internal/storage"
)

// PlaceHandler handles place endpoints.
type PlaceHandler struct {
	placeService service.PlaceService
	files        storage.FileStore
}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler(placeService service.PlaceService, files storage.FileStore) *PlaceHandler {
	return &PlaceHandler{placeService: placeService, files: files}
}

// CreatePlaceRequest represents the multipart create-place form.
type CreatePlaceRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required,min=5"`
	Address     string `form:"address" validate:"required"`
}

// UpdatePlaceRequest represents a place update request.
type UpdatePlaceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

// GetPlace godoc
// @Summary Get a place by id
// @Tags places
// @Produce json
// @Param pid path string true "Place ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /places/{pid} [get]
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrPlaceNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	place, err := h.placeService.GetPlace(c.Request().Context(), placeID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"place": place})
}

// GetPlacesByUser godoc
// @Summary List a user's places
// @Description A user with zero places yields an empty array, not an error.
// @Tags places
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{uid}/places [get]
func (h *PlaceHandler) GetPlacesByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError,
			apperrors.ErrorResponse{Message: "Fetching places failed, please try again later"})
	}

	places, err := h.placeService.ListPlacesByUser(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError,
			apperrors.ErrorResponse{Message: "Fetching places failed, please try again later"})
	}
	return c.JSON(http.StatusOK, echo.Map{"places": places})
}

// CreatePlace godoc
// @Summary Create a place
// @Tags places
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param address formData string true "Address"
// @Param image formData file true "Place image"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /places [post]
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}

	var req CreatePlaceRequest
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
			apperrors.ErrorResponse{Message: "Creating place failed, please try again."})
	}
	c.Set(UploadedFileKey, imagePath)

	place, err := h.placeService.CreatePlace(c.Request().Context(), userID,
		req.Title, req.Description, req.Address, imagePath)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, echo.Map{"place": place})
}

// UpdatePlace godoc
// @Summary Update a place's title and description
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pid path string true "Place ID"
// @Param request body UpdatePlaceRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /places/{pid} [patch]
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}

	placeID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrPlaceNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req UpdatePlaceRequest
	if err := c.Bind(&req); err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidInput)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if err := c.Validate(&req); err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidInput)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	place, err := h.placeService.UpdatePlace(c.Request().Context(), placeID, userID,
		req.Title, req.Description)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"place": place})
}

// DeletePlace godoc
// @Summary Delete a place
// @Tags places
// @Produce json
// @Security BearerAuth
// @Param pid path string true "Place ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /places/{pid} [delete]
func (h *PlaceHandler) DeletePlace(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}

	placeID, err := uuid.Parse(c.Param("pid"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrPlaceGone)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.placeService.DeletePlace(c.Request().Context(), placeID, userID); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Deleted place successfully.",
	})
}
