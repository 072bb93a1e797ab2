package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"placeshare/internal/auth"
)

// UploadedFileKey is the context key under which handlers record the path of
// a stored upload so the error handler can clean it up on failure.
const UploadedFileKey = "uploadedFile"

// authUserID extracts the authenticated user id populated by the JWT
// middleware. Routes behind the middleware always carry parsed claims.
func authUserID(c echo.Context) (uuid.UUID, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return userID, nil
}
