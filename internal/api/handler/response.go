package handler

import "github.com/labstack/echo/v4"

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Status: status, Message: message, Data: data})
}
