// Package response writes the unified JSON envelope of the HTTP API.
package response

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const headerCacheControl = "Cache-Control"

// Response unified API response structure. Failed requests use the same
// shape through the error handler.
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`    // HTTP status code
	Message string `json:"message"` // User-friendly message
	Data    any    `json:"data,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// OK 200 response
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created 201 response
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Blob writes a binary body. A positive maxAgeSeconds makes it publicly
// cacheable.
func Blob(c echo.Context, contentType string, maxAgeSeconds int, data []byte) error {
	if maxAgeSeconds > 0 {
		c.Response().Header().Set(headerCacheControl, "public, max-age="+strconv.Itoa(maxAgeSeconds))
	} else {
		c.Response().Header().Set(headerCacheControl, "no-store")
	}

	return c.Blob(http.StatusOK, contentType, data)
}
